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

package crossing_test

import (
	"testing"

	"github.com/tickbook/tickbook/core/crossing"
	"github.com/tickbook/tickbook/core/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundaryTick(t *testing.T) {
	t.Run("Aligned ticks map to themselves", testBoundaryAligned)
	t.Run("Positive ticks floor towards zero", testBoundaryPositive)
	t.Run("Negative ticks floor away from zero", testBoundaryNegative)
	t.Run("Spacing of one is the identity", testBoundarySpacingOne)
}

func TestCrossable(t *testing.T) {
	t.Run("Both directions at the boundary tick", testCrossableBothDirections)
	t.Run("Same inputs always yield the same keys", testCrossableDeterministic)
}

func testBoundaryAligned(t *testing.T) {
	assert.EqualValues(t, 0, crossing.BoundaryTick(0, 10))
	assert.EqualValues(t, 120, crossing.BoundaryTick(120, 60))
	assert.EqualValues(t, -120, crossing.BoundaryTick(-120, 60))
}

func testBoundaryPositive(t *testing.T) {
	assert.EqualValues(t, 0, crossing.BoundaryTick(7, 10))
	assert.EqualValues(t, 60, crossing.BoundaryTick(119, 60))
	assert.EqualValues(t, 100, crossing.BoundaryTick(105, 10))
}

func testBoundaryNegative(t *testing.T) {
	// truncating division alone would give 0 and -60 here
	assert.EqualValues(t, -10, crossing.BoundaryTick(-7, 10))
	assert.EqualValues(t, -120, crossing.BoundaryTick(-119, 60))
	assert.EqualValues(t, -60, crossing.BoundaryTick(-1, 60))
}

func testBoundarySpacingOne(t *testing.T) {
	for _, tick := range []int64{-3, -1, 0, 1, 42} {
		assert.Equal(t, tick, crossing.BoundaryTick(tick, 1))
	}
}

func testCrossableBothDirections(t *testing.T) {
	pool := types.NewPoolContext("ETH", "USDC", 60)
	keys := crossing.Crossable(pool, 119)

	require.Len(t, keys, 2)
	for _, k := range keys {
		assert.Equal(t, pool.ID, k.Pool)
		assert.EqualValues(t, 60, k.Tick)
	}
	assert.True(t, keys[0].ZeroForOne)
	assert.False(t, keys[1].ZeroForOne)
	assert.NotEqual(t, keys[0].ID(), keys[1].ID())
}

func testCrossableDeterministic(t *testing.T) {
	pool := types.NewPoolContext("ETH", "USDC", 10)
	first := crossing.Crossable(pool, -35)
	second := crossing.Crossable(pool, -35)
	assert.Equal(t, first, second)
	assert.EqualValues(t, -40, first[0].Tick)
}
