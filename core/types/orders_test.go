// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package types_test

import (
	"testing"

	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"

	"github.com/stretchr/testify/assert"
)

func TestOrderKeyID(t *testing.T) {
	t.Run("Identical keys share a digest", testKeyIDDeterministic)
	t.Run("Any field change yields a new digest", testKeyIDDistinct)
	t.Run("Negative ticks digest cleanly", testKeyIDNegativeTick)
}

func testKeyIDDeterministic(t *testing.T) {
	a := types.OrderKey{Pool: "pool-1", Tick: 120, ZeroForOne: true}
	b := types.OrderKey{Pool: "pool-1", Tick: 120, ZeroForOne: true}
	assert.Equal(t, a.ID(), b.ID())
	assert.Len(t, a.ID(), 64)
}

func testKeyIDDistinct(t *testing.T) {
	base := types.OrderKey{Pool: "pool-1", Tick: 120, ZeroForOne: true}
	seen := map[string]struct{}{base.ID(): {}}
	for _, k := range []types.OrderKey{
		{Pool: "pool-2", Tick: 120, ZeroForOne: true},
		{Pool: "pool-1", Tick: 180, ZeroForOne: true},
		{Pool: "pool-1", Tick: 120, ZeroForOne: false},
		{Pool: "pool-1", Tick: -120, ZeroForOne: true},
	} {
		id := k.ID()
		_, dup := seen[id]
		assert.False(t, dup, "digest collision for %+v", k)
		seen[id] = struct{}{}
	}
}

func testKeyIDNegativeTick(t *testing.T) {
	a := types.OrderKey{Pool: "pool-1", Tick: -60, ZeroForOne: false}
	b := types.OrderKey{Pool: "pool-1", Tick: -60, ZeroForOne: false}
	assert.Equal(t, a.ID(), b.ID())
}

func TestOrderClone(t *testing.T) {
	o := types.NewOrder()
	o.Exists = true
	o.PendingIn.AddSum(num.NewUint(100))

	clone := o.Clone()
	clone.PendingIn.AddSum(num.NewUint(50))
	clone.FilledOut.AddSum(num.NewUint(10))

	assert.True(t, o.PendingIn.EQ(num.NewUint(100)))
	assert.True(t, o.FilledOut.IsZero())
	assert.True(t, clone.Exists)
}

func TestPoolContext(t *testing.T) {
	t.Run("Same configuration derives the same ID", func(t *testing.T) {
		a := types.NewPoolContext("ETH", "USDC", 60)
		b := types.NewPoolContext("ETH", "USDC", 60)
		assert.Equal(t, a.ID, b.ID)
	})
	t.Run("Asset order and spacing are part of the identity", func(t *testing.T) {
		a := types.NewPoolContext("ETH", "USDC", 60)
		assert.NotEqual(t, a.ID, types.NewPoolContext("USDC", "ETH", 60).ID)
		assert.NotEqual(t, a.ID, types.NewPoolContext("ETH", "USDC", 10).ID)
	})
	t.Run("Input and output assets follow the direction", func(t *testing.T) {
		p := types.NewPoolContext("ETH", "USDC", 60)
		assert.Equal(t, "ETH", p.InputAsset(true))
		assert.Equal(t, "USDC", p.OutputAsset(true))
		assert.Equal(t, "USDC", p.InputAsset(false))
		assert.Equal(t, "ETH", p.OutputAsset(false))
	})
}
