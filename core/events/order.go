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

package events

import (
	"context"

	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"
)

// OrderPlaced is sent when a deposit is committed to an order slot.
type OrderPlaced struct {
	*Base
	key    types.OrderKey
	party  string
	amount *num.Uint
}

func NewOrderPlaced(ctx context.Context, key types.OrderKey, party string, amount *num.Uint) *OrderPlaced {
	return &OrderPlaced{
		Base:   newBase(ctx, OrderPlacedEvent),
		key:    key,
		party:  party,
		amount: amount.Clone(),
	}
}

func (o OrderPlaced) OrderKey() types.OrderKey { return o.key }
func (o OrderPlaced) Party() string            { return o.party }
func (o OrderPlaced) Amount() *num.Uint        { return o.amount.Clone() }

// OrderCancelled is sent when a depositor pulls their full pending stake
// back out of an order slot.
type OrderCancelled struct {
	*Base
	key    types.OrderKey
	party  string
	refund *num.Uint
}

func NewOrderCancelled(ctx context.Context, key types.OrderKey, party string, refund *num.Uint) *OrderCancelled {
	return &OrderCancelled{
		Base:   newBase(ctx, OrderCancelledEvent),
		key:    key,
		party:  party,
		refund: refund.Clone(),
	}
}

func (o OrderCancelled) OrderKey() types.OrderKey { return o.key }
func (o OrderCancelled) Party() string            { return o.party }
func (o OrderCancelled) Refund() *num.Uint        { return o.refund.Clone() }

// OrderFilled is sent when a crossed order is executed against the pool.
type OrderFilled struct {
	*Base
	key       types.OrderKey
	amountIn  *num.Uint
	amountOut *num.Uint
}

func NewOrderFilled(ctx context.Context, key types.OrderKey, amountIn, amountOut *num.Uint) *OrderFilled {
	return &OrderFilled{
		Base:      newBase(ctx, OrderFilledEvent),
		key:       key,
		amountIn:  amountIn.Clone(),
		amountOut: amountOut.Clone(),
	}
}

func (o OrderFilled) OrderKey() types.OrderKey { return o.key }
func (o OrderFilled) AmountIn() *num.Uint      { return o.amountIn.Clone() }
func (o OrderFilled) AmountOut() *num.Uint     { return o.amountOut.Clone() }

// ProceedsRedeemed is sent when a claim holder withdraws their share of
// filled proceeds.
type ProceedsRedeemed struct {
	*Base
	key      types.OrderKey
	party    string
	to       string
	burned   *num.Uint
	released *num.Uint
}

func NewProceedsRedeemed(ctx context.Context, key types.OrderKey, party, to string, burned, released *num.Uint) *ProceedsRedeemed {
	return &ProceedsRedeemed{
		Base:     newBase(ctx, ProceedsRedeemedEvent),
		key:      key,
		party:    party,
		to:       to,
		burned:   burned.Clone(),
		released: released.Clone(),
	}
}

func (p ProceedsRedeemed) OrderKey() types.OrderKey { return p.key }
func (p ProceedsRedeemed) Party() string            { return p.party }
func (p ProceedsRedeemed) To() string               { return p.to }
func (p ProceedsRedeemed) Burned() *num.Uint        { return p.burned.Clone() }
func (p ProceedsRedeemed) Released() *num.Uint      { return p.released.Clone() }

// PoolRegistered is sent when a pool context is registered with the ledger.
type PoolRegistered struct {
	*Base
	pool types.PoolContext
}

func NewPoolRegistered(ctx context.Context, pool types.PoolContext) *PoolRegistered {
	return &PoolRegistered{
		Base: newBase(ctx, PoolRegisteredEvent),
		pool: pool,
	}
}

func (p PoolRegistered) Pool() types.PoolContext { return p.pool }
