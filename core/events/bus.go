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

	vgcrypto "github.com/tickbook/tickbook/libs/crypto"
)

type Type int

const (
	// All event type -> used by subscribers to just receive all events, has no actual corresponding event payload.
	All Type = iota
	PoolRegisteredEvent
	OrderPlacedEvent
	OrderCancelledEvent
	OrderFilledEvent
	ProceedsRedeemedEvent
)

var eventNames = map[Type]string{
	All:                   "ALL",
	PoolRegisteredEvent:   "PoolRegisteredEvent",
	OrderPlacedEvent:      "OrderPlacedEvent",
	OrderCancelledEvent:   "OrderCancelledEvent",
	OrderFilledEvent:      "OrderFilledEvent",
	ProceedsRedeemedEvent: "ProceedsRedeemedEvent",
}

func (t Type) String() string {
	s, ok := eventNames[t]
	if !ok {
		return "UNKNOWN EVENT"
	}
	return s
}

// Event - the base event interface type.
type Event interface {
	Type() Type
	Context() context.Context
	TraceID() string
	Sequence() uint64
	SetSequenceID(s uint64)
}

type traceIDKey int

const traceKey traceIDKey = 0

// WithTraceID returns a context carrying the given trace ID, events created
// from that context inherit it.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceKey, traceID)
}

// TraceIDFromContext returns the trace ID carried by the context, minting a
// fresh one when the context has none.
func TraceIDFromContext(ctx context.Context) (context.Context, string) {
	if tID, ok := ctx.Value(traceKey).(string); ok && tID != "" {
		return ctx, tID
	}
	tID := vgcrypto.RandomHash()
	return WithTraceID(ctx, tID), tID
}

// Base common denominator all event-bus events share.
type Base struct {
	ctx     context.Context
	traceID string
	seq     uint64
	et      Type
}

func newBase(ctx context.Context, t Type) *Base {
	ctx, tID := TraceIDFromContext(ctx)
	return &Base{
		ctx:     ctx,
		traceID: tID,
		et:      t,
	}
}

// TraceID returns the... traceID obviously.
func (b Base) TraceID() string {
	return b.traceID
}

// Sequence returns event sequence number.
func (b Base) Sequence() uint64 {
	return b.seq
}

// SetSequenceID set the event sequence id, should only be called once.
func (b *Base) SetSequenceID(s uint64) {
	if b.seq != 0 {
		return
	}
	b.seq = s
}

// Context returns context.
func (b Base) Context() context.Context {
	return b.ctx
}

// Type returns the event type.
func (b Base) Type() Type {
	return b.et
}
