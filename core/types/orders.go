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
	"errors"

	vgcrypto "github.com/tickbook/tickbook/libs/crypto"
	"github.com/tickbook/tickbook/libs/num"
)

var (
	// ErrInvalidAmount signals a zero amount supplied to a mutating call.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTransferFailed signals the asset-movement collaborator declined.
	ErrTransferFailed = errors.New("asset transfer failed")
)

// OrderKey is the composite identity of an order slot, one slot exists
// per (pool, tick, direction) triple. Orders at the same tick with
// opposite directions are independent records.
type OrderKey struct {
	Pool       string
	Tick       int64
	ZeroForOne bool
}

// ID returns a deterministic, collision-resistant digest of the key,
// used to route claim receipts and to address the order table.
func (k OrderKey) ID() string {
	buf := make([]byte, 0, len(k.Pool)+9)
	buf = append(buf, []byte(k.Pool)...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(k.Tick))
	if k.ZeroForOne {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return vgcrypto.HashToHex(buf)
}

// Order is the unit of bookkeeping per OrderKey. Amounts are unsigned by
// construction so the (PendingIn, FilledOut) pair can never go negative,
// guarded subtraction surfaces internal-consistency faults instead.
type Order struct {
	// PendingIn is the input-asset amount deposited but not yet executed.
	PendingIn *num.Uint
	// FilledOut is the output-asset amount available for redemption,
	// accumulated over possibly many fill events.
	FilledOut *num.Uint
	// Exists becomes true on first deposit and never reverts, an order
	// at zero balances is dormant, not deleted.
	Exists bool
}

// NewOrder returns an order slot at zero balances.
func NewOrder() *Order {
	return &Order{
		PendingIn: num.UintZero(),
		FilledOut: num.UintZero(),
	}
}

// Clone returns a deep copy of the order.
func (o Order) Clone() *Order {
	return &Order{
		PendingIn: o.PendingIn.Clone(),
		FilledOut: o.FilledOut.Clone(),
		Exists:    o.Exists,
	}
}
