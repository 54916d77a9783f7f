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

// Package crossing identifies the order keys made eligible to fill by a
// pool trade. The check inspects the single spacing-aligned boundary below
// the post-trade tick, a trade jumping several spacing units in one go will
// not trigger orders parked at the skipped intermediate boundaries.
package crossing

import (
	"github.com/tickbook/tickbook/core/types"
)

// BoundaryTick returns the highest spacing-aligned tick at or below the
// given tick. Truncating division rounds towards zero, so negative ticks
// off a spacing boundary are corrected downwards to keep floor semantics.
func BoundaryTick(tick, spacing int64) int64 {
	compressed := tick / spacing
	if tick < 0 && tick%spacing != 0 {
		compressed--
	}
	return compressed * spacing
}

// Crossable returns the order keys considered crossable once the pool's
// trading price settled on tickAfter, both directions at the boundary tick.
// Deterministic: the same pool and post-trade tick always yield the same
// key set.
func Crossable(pool *types.PoolContext, tickAfter int64) [2]types.OrderKey {
	boundary := BoundaryTick(tickAfter, pool.TickSpacing)
	return [2]types.OrderKey{
		{Pool: pool.ID, Tick: boundary, ZeroForOne: true},
		{Pool: pool.ID, Tick: boundary, ZeroForOne: false},
	}
}
