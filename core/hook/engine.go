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

package hook

import (
	"context"
	"errors"
	"fmt"

	"github.com/tickbook/tickbook/core/crossing"
	"github.com/tickbook/tickbook/core/events"
	"github.com/tickbook/tickbook/core/execution"
	"github.com/tickbook/tickbook/core/ledger"
	"github.com/tickbook/tickbook/core/redemption"
	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"
	"github.com/tickbook/tickbook/logging"
)

var (
	// ErrUnknownPool is returned when an operation references a pool that
	// was never registered.
	ErrUnknownPool = errors.New("unknown pool")
	// ErrPoolAlreadyRegistered is returned on registering the same pool
	// configuration twice.
	ErrPoolAlreadyRegistered = errors.New("pool already registered")
	// ErrInvalidTickSpacing is returned when a pool is registered with a
	// non-positive tick spacing.
	ErrInvalidTickSpacing = errors.New("invalid tick spacing")
	// ErrPoolCallFailed signals the pool collaborator declined.
	ErrPoolCallFailed = execution.ErrPoolCallFailed
)

// Pool is the full AMM collaborator surface the hook requires.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/pool_mock.go -package mocks github.com/tickbook/tickbook/core/hook Pool
type Pool interface {
	CurrentTick(pool string) (int64, error)
	Swap(pool string, zeroForOne bool, amountIn, priceLimit *num.Uint) (deltaA, deltaB *num.Int, err error)
	Settle(pool, asset string, amount *num.Uint) error
	Take(pool, asset string, amount *num.Uint, to string) error
}

// AssetTransfer moves fungible assets in and out of ledger custody.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_transfer_mock.go -package mocks github.com/tickbook/tickbook/core/hook AssetTransfer
type AssetTransfer interface {
	Pull(ctx context.Context, asset, from string, amount *num.Uint) error
	Push(ctx context.Context, asset, to string, amount *num.Uint) error
}

// ClaimLedger is the fungible claim-receipt collaborator.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/claim_ledger_mock.go -package mocks github.com/tickbook/tickbook/core/hook ClaimLedger
type ClaimLedger interface {
	Mint(holder, keyID string, amount *num.Uint) error
	Burn(holder, keyID string, amount *num.Uint) error
	BalanceOf(holder, keyID string) *num.Uint
	TotalSupply(keyID string) *num.Uint
}

// Broker - the event bus broker, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/tickbook/tickbook/core/hook Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// Engine is the composition root. It owns the pool registry, the order
// arena and the reentrancy guard, and hands each operation to the engine
// responsible for it. One operation runs to completion before the next,
// the guard exists for collaborators calling back in mid-operation.
type Engine struct {
	Config
	log *logging.Logger

	pool   Pool
	broker Broker

	pools map[string]*types.PoolContext
	guard *guard
	table *ledger.Table

	ledger     *ledger.Engine
	execution  *execution.Engine
	redemption *redemption.Engine
}

// New instantiates the order-ledger core and all its engines.
func New(log *logging.Logger, conf Config, pool Pool, assets AssetTransfer, claims ClaimLedger, broker Broker) *Engine {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	table := ledger.NewTable()
	return &Engine{
		Config:     conf,
		log:        log,
		pool:       pool,
		broker:     broker,
		pools:      map[string]*types.PoolContext{},
		guard:      newGuard(),
		table:      table,
		ledger:     ledger.New(log, conf.Ledger, table, assets, claims, broker),
		execution:  execution.New(log, conf.Execution, pool, assets, table, broker, conf.HoldingAccount),
		redemption: redemption.New(log, conf.Redemption, table, assets, claims, broker),
	}
}

// ReloadConf update the configuration of the hook and all sub-engines.
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
	e.ledger.ReloadConf(cfg.Ledger)
	e.execution.ReloadConf(cfg.Execution)
	e.redemption.ReloadConf(cfg.Redemption)
}

// RegisterPool derives the pool's stable identifier from its configuration
// and adds it to the registry. The context is immutable from then on.
func (e *Engine) RegisterPool(ctx context.Context, assetA, assetB string, tickSpacing int64) (*types.PoolContext, error) {
	if tickSpacing <= 0 {
		return nil, ErrInvalidTickSpacing
	}
	pc := types.NewPoolContext(assetA, assetB, tickSpacing)
	if _, ok := e.pools[pc.ID]; ok {
		return nil, ErrPoolAlreadyRegistered
	}
	e.pools[pc.ID] = pc

	e.log.Info("pool registered",
		logging.PoolID(pc.ID),
		logging.String("asset-a", assetA),
		logging.String("asset-b", assetB),
		logging.Int64("tick-spacing", tickSpacing),
	)
	e.broker.Send(events.NewPoolRegistered(ctx, *pc))

	return pc, nil
}

// PoolByID returns the registered pool context for the given identifier.
func (e *Engine) PoolByID(id string) (*types.PoolContext, error) {
	pc, ok := e.pools[id]
	if !ok {
		return nil, ErrUnknownPool
	}
	return pc, nil
}

// GetOrder returns a copy of the order slot at the given key, or false if
// the slot was never deposited into.
func (e *Engine) GetOrder(poolID string, tick int64, zeroForOne bool) (*types.Order, bool) {
	o, ok := e.table.Get(types.OrderKey{Pool: poolID, Tick: tick, ZeroForOne: zeroForOne})
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// PlaceOrder commits amountIn at the given tick and direction, returning
// the amount of claim receipts minted to the party.
func (e *Engine) PlaceOrder(ctx context.Context, party, poolID string, tick int64, amountIn *num.Uint, zeroForOne bool) (*num.Uint, error) {
	pc, err := e.PoolByID(poolID)
	if err != nil {
		return nil, err
	}
	keyID := types.OrderKey{Pool: pc.ID, Tick: tick, ZeroForOne: zeroForOne}.ID()
	if err := e.guard.enter(keyID); err != nil {
		return nil, err
	}
	defer e.guard.exit(keyID)

	return e.ledger.PlaceOrder(ctx, party, pc, tick, amountIn, zeroForOne)
}

// CancelOrder burns the party's full claim balance for the key and refunds
// the matching amount of input asset.
func (e *Engine) CancelOrder(ctx context.Context, party, poolID string, tick int64, zeroForOne bool) (*num.Uint, error) {
	pc, err := e.PoolByID(poolID)
	if err != nil {
		return nil, err
	}
	keyID := types.OrderKey{Pool: pc.ID, Tick: tick, ZeroForOne: zeroForOne}.ID()
	if err := e.guard.enter(keyID); err != nil {
		return nil, err
	}
	defer e.guard.exit(keyID)

	return e.ledger.CancelOrder(ctx, party, pc, tick, zeroForOne)
}

// Redeem burns amount claim receipts and pays the party's proportional
// share of filled proceeds to the given account.
func (e *Engine) Redeem(ctx context.Context, party, poolID string, tick int64, zeroForOne bool, amount *num.Uint, to string) (*num.Uint, error) {
	pc, err := e.PoolByID(poolID)
	if err != nil {
		return nil, err
	}
	keyID := types.OrderKey{Pool: pc.ID, Tick: tick, ZeroForOne: zeroForOne}.ID()
	if err := e.guard.enter(keyID); err != nil {
		return nil, err
	}
	defer e.guard.exit(keyID)

	return e.redemption.Redeem(ctx, party, pc, tick, zeroForOne, amount, to)
}

// OnSwapCompleted is the trade-completion notification. The host calls it
// after every pool trade, other consumers of the notification are none of
// the core's business and pool state is only touched through the pool
// collaborator surface.
func (e *Engine) OnSwapCompleted(ctx context.Context, poolID string) error {
	pc, err := e.PoolByID(poolID)
	if err != nil {
		return err
	}

	tick, err := e.pool.CurrentTick(pc.ID)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPoolCallFailed, err.Error())
	}

	keys := crossing.Crossable(pc, tick)
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, k.ID())
	}
	if err := e.guard.enter(ids...); err != nil {
		return err
	}
	defer e.guard.exit(ids...)

	return e.execution.FillCrossed(ctx, pc, tick)
}
