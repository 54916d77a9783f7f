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

package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tickbook/tickbook/core/events"
	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"
	"github.com/tickbook/tickbook/logging"
	"github.com/tickbook/tickbook/metrics"
)

var (
	// ErrNoClaim is returned when the caller holds no claim receipts for the key.
	ErrNoClaim = errors.New("no claim receipts held for order")
	// ErrInsufficientPending signals ledger math would go negative, an
	// internal-consistency fault rather than a user error.
	ErrInsufficientPending = errors.New("pending balance lower than claimed amount")
)

// AssetTransfer moves fungible assets in and out of ledger custody.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_transfer_mock.go -package mocks github.com/tickbook/tickbook/core/ledger AssetTransfer
type AssetTransfer interface {
	Pull(ctx context.Context, asset, from string, amount *num.Uint) error
	Push(ctx context.Context, asset, to string, amount *num.Uint) error
}

// ClaimLedger is the fungible claim-receipt collaborator, receipts are
// routed by the order-key digest.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/claim_ledger_mock.go -package mocks github.com/tickbook/tickbook/core/ledger ClaimLedger
type ClaimLedger interface {
	Mint(holder, keyID string, amount *num.Uint) error
	Burn(holder, keyID string, amount *num.Uint) error
	BalanceOf(holder, keyID string) *num.Uint
	TotalSupply(keyID string) *num.Uint
}

// Broker - the event bus broker, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/tickbook/tickbook/core/ledger Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// Engine owns deposit and cancellation accounting over the order arena.
type Engine struct {
	Config
	log *logging.Logger

	table  *Table
	assets AssetTransfer
	claims ClaimLedger
	broker Broker
}

// New instantiates a new instance of the ledger engine.
func New(log *logging.Logger, conf Config, table *Table, assets AssetTransfer, claims ClaimLedger, broker Broker) *Engine {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config: conf,
		log:    log,
		table:  table,
		assets: assets,
		claims: claims,
		broker: broker,
	}
}

// ReloadConf update the internal configuration of the ledger engine.
func (e *Engine) ReloadConf(cfg Config) {
	e.log.Info("reloading configuration")
	if e.log.GetLevel() != cfg.Level.Get() {
		e.log.Info("updating log level",
			logging.String("old", e.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		e.log.SetLevel(cfg.Level.Get())
	}

	e.Config = cfg
}

// PlaceOrder commits amountIn of the input asset at the given tick and
// direction. The order slot is created on first use, custody of the input
// asset moves to the ledger, and the caller is minted one claim receipt per
// unit deposited.
func (e *Engine) PlaceOrder(ctx context.Context, party string, pool *types.PoolContext, tick int64, amountIn *num.Uint, zeroForOne bool) (*num.Uint, error) {
	defer metrics.EngineTimeCounterAdd(time.Now(), pool.ID, "ledger", "PlaceOrder")

	if amountIn == nil || amountIn.IsZero() {
		return nil, types.ErrInvalidAmount
	}

	key := types.OrderKey{Pool: pool.ID, Tick: tick, ZeroForOne: zeroForOne}
	asset := pool.InputAsset(zeroForOne)

	// move custody first, the order record is only touched once the
	// collaborators accepted the operation
	if err := e.assets.Pull(ctx, asset, party, amountIn); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrTransferFailed, err.Error())
	}
	if err := e.claims.Mint(party, key.ID(), amountIn); err != nil {
		return nil, fmt.Errorf("couldn't mint claim receipts: %w", err)
	}

	order := e.table.GetOrCreate(key)
	if order.PendingIn.IsZero() {
		metrics.OrderGaugeAdd(1, pool.ID)
	}
	order.Exists = true
	order.PendingIn.AddSum(amountIn)

	if e.log.IsDebug() {
		e.log.Debug("order placed",
			logging.Party(party),
			logging.PoolID(pool.ID),
			logging.Tick(tick),
			logging.Bool("zero-for-one", zeroForOne),
			logging.String("amount", amountIn.String()),
		)
	}
	metrics.OrderCounterInc(pool.ID, "placed")
	e.broker.Send(events.NewOrderPlaced(ctx, key, party, amountIn))

	return amountIn.Clone(), nil
}

// CancelOrder burns the caller's entire claim-receipt balance for the key
// and refunds the same amount of input asset. Cancellation is all-or-nothing
// on the current balance, partial cancellation is not supported.
func (e *Engine) CancelOrder(ctx context.Context, party string, pool *types.PoolContext, tick int64, zeroForOne bool) (*num.Uint, error) {
	defer metrics.EngineTimeCounterAdd(time.Now(), pool.ID, "ledger", "CancelOrder")

	key := types.OrderKey{Pool: pool.ID, Tick: tick, ZeroForOne: zeroForOne}
	keyID := key.ID()

	balance := e.claims.BalanceOf(party, keyID)
	if balance == nil || balance.IsZero() {
		return nil, ErrNoClaim
	}

	order, ok := e.table.Get(key)
	if !ok || order.PendingIn.LT(balance) {
		// receipts outliving the pending balance means the books no
		// longer reconcile
		e.log.Error("claim receipts exceed pending balance",
			logging.Party(party),
			logging.OrderKeyID(keyID),
			logging.String("balance", balance.String()),
		)
		return nil, ErrInsufficientPending
	}

	if err := e.claims.Burn(party, keyID, balance); err != nil {
		return nil, fmt.Errorf("couldn't burn claim receipts: %w", err)
	}
	if err := e.assets.Push(ctx, pool.InputAsset(zeroForOne), party, balance); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrTransferFailed, err.Error())
	}

	order.PendingIn.Sub(order.PendingIn, balance)
	if order.PendingIn.IsZero() {
		metrics.OrderGaugeAdd(-1, pool.ID)
	}

	if e.log.IsDebug() {
		e.log.Debug("order cancelled",
			logging.Party(party),
			logging.PoolID(pool.ID),
			logging.Tick(tick),
			logging.String("refund", balance.String()),
		)
	}
	metrics.OrderCounterInc(pool.ID, "cancelled")
	e.broker.Send(events.NewOrderCancelled(ctx, key, party, balance))

	return balance.Clone(), nil
}
