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

package types

import (
	"encoding/binary"

	vgcrypto "github.com/tickbook/tickbook/libs/crypto"
)

// PoolContext identifies an AMM pool the ledger parks orders against.
// Immutable once registered, the ID is derived from the configuration
// so the same pair and spacing always map to the same pool.
type PoolContext struct {
	// AssetA is the pool's first asset, sold when an order is zeroForOne.
	AssetA string
	// AssetB is the pool's second asset.
	AssetB string
	// TickSpacing is the minimum interval between initialisable ticks.
	TickSpacing int64
	// ID is the stable pool identifier, derived from the fields above.
	ID string
}

// NewPoolContext builds the pool context and derives its stable identifier.
func NewPoolContext(assetA, assetB string, tickSpacing int64) *PoolContext {
	buf := make([]byte, 0, len(assetA)+len(assetB)+10)
	buf = append(buf, []byte(assetA)...)
	buf = append(buf, '/')
	buf = append(buf, []byte(assetB)...)
	buf = append(buf, '/')
	buf = binary.BigEndian.AppendUint64(buf, uint64(tickSpacing))
	return &PoolContext{
		AssetA:      assetA,
		AssetB:      assetB,
		TickSpacing: tickSpacing,
		ID:          vgcrypto.HashToHex(buf),
	}
}

// InputAsset returns the asset a depositor commits for the given direction.
func (p PoolContext) InputAsset(zeroForOne bool) string {
	if zeroForOne {
		return p.AssetA
	}
	return p.AssetB
}

// OutputAsset returns the asset an order converts into for the given direction.
func (p PoolContext) OutputAsset(zeroForOne bool) string {
	if zeroForOne {
		return p.AssetB
	}
	return p.AssetA
}
