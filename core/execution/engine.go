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

package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tickbook/tickbook/core/crossing"
	"github.com/tickbook/tickbook/core/events"
	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"
	"github.com/tickbook/tickbook/logging"
	"github.com/tickbook/tickbook/metrics"
)

// ErrPoolCallFailed signals the swap/settlement collaborator declined.
var ErrPoolCallFailed = errors.New("pool call failed")

// Pool is the AMM swap collaborator, the engine only ever touches pool
// state through these three calls.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/pool_mock.go -package mocks github.com/tickbook/tickbook/core/execution Pool
type Pool interface {
	// Swap trades amountIn in the given direction, returning the signed
	// balance deltas for both assets, positive = ledger owes the pool,
	// negative = pool owes the ledger.
	Swap(pool string, zeroForOne bool, amountIn, priceLimit *num.Uint) (deltaA, deltaB *num.Int, err error)
	// Settle acknowledges payment of an owed amount to the pool.
	Settle(pool, asset string, amount *num.Uint) error
	// Take withdraws an amount the pool owes into the given account.
	Take(pool, asset string, amount *num.Uint, to string) error
}

// AssetTransfer moves fungible assets in and out of ledger custody.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_transfer_mock.go -package mocks github.com/tickbook/tickbook/core/execution AssetTransfer
type AssetTransfer interface {
	Pull(ctx context.Context, asset, from string, amount *num.Uint) error
	Push(ctx context.Context, asset, to string, amount *num.Uint) error
}

// OrderStore gives the engine read access to the order arena, fills are
// committed back through the order records it returns.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/order_store_mock.go -package mocks github.com/tickbook/tickbook/core/execution OrderStore
type OrderStore interface {
	Get(key types.OrderKey) (*types.Order, bool)
}

// Broker - the event bus broker, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/tickbook/tickbook/core/execution Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// stagedFill is a fully settled swap waiting to be committed to the order
// arena once the whole trade-completion hook succeeded.
type stagedFill struct {
	key       types.OrderKey
	order     *types.Order
	amountIn  *num.Uint
	amountOut *num.Uint
}

// Engine converts crossed orders into the opposite asset at the prevailing
// pool price and reconciles the resulting balance deltas.
type Engine struct {
	Config
	log *logging.Logger

	pool    Pool
	assets  AssetTransfer
	store   OrderStore
	broker  Broker
	holding string
}

// New instantiates a new instance of the execution engine. The holding
// account receives swap output taken from the pool.
func New(log *logging.Logger, conf Config, pool Pool, assets AssetTransfer, store OrderStore, broker Broker, holding string) *Engine {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config:  conf,
		log:     log,
		pool:    pool,
		assets:  assets,
		store:   store,
		broker:  broker,
		holding: holding,
	}
}

// ReloadConf update the internal configuration of the execution engine.
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

// FillCrossed works out which order keys became crossable given the
// post-trade tick and fills every one holding a pending balance. Fills are
// staged and only committed to the order arena once every key settled, a
// collaborator failure anywhere aborts with no order mutations persisted.
func (e *Engine) FillCrossed(ctx context.Context, pool *types.PoolContext, tick int64) error {
	defer metrics.EngineTimeCounterAdd(time.Now(), pool.ID, "execution", "FillCrossed")

	keys := crossing.Crossable(pool, tick)
	staged := make([]stagedFill, 0, len(keys))
	for _, key := range keys {
		order, ok := e.store.Get(key)
		if !ok || order.PendingIn.IsZero() {
			continue
		}
		fill, err := e.fill(ctx, pool, key, order)
		if err != nil {
			e.log.Error("aborting trade-completion hook",
				logging.PoolID(pool.ID),
				logging.Tick(tick),
				logging.Error(err),
			)
			return err
		}
		staged = append(staged, fill)
	}

	if len(staged) == 0 {
		return nil
	}

	evts := make([]events.Event, 0, len(staged))
	for _, f := range staged {
		f.order.PendingIn.Sub(f.order.PendingIn, f.amountIn)
		f.order.FilledOut.AddSum(f.amountOut)
		metrics.OrderGaugeAdd(-1, pool.ID)
		metrics.OrderCounterInc(pool.ID, "filled")
		evts = append(evts, events.NewOrderFilled(ctx, f.key, f.amountIn, f.amountOut))

		if e.log.IsDebug() {
			e.log.Debug("order filled",
				logging.OrderKeyID(f.key.ID()),
				logging.Tick(f.key.Tick),
				logging.Bool("zero-for-one", f.key.ZeroForOne),
				logging.String("amount-in", f.amountIn.String()),
				logging.String("amount-out", f.amountOut.String()),
			)
		}
	}
	e.broker.SendBatch(evts)

	return nil
}

// fill swaps the order's entire pending balance and settles both asset
// deltas with the pool. No price protection beyond the pool's own
// mechanics, the limit passed is the most permissive bound for the
// direction, so the pool must consume the whole amountIn. A negative
// delta on the input asset would be unspent input handed back, which has
// no home in the order's bookkeeping, so it aborts as a collaborator
// fault.
func (e *Engine) fill(ctx context.Context, pool *types.PoolContext, key types.OrderKey, order *types.Order) (stagedFill, error) {
	amountIn := order.PendingIn.Clone()
	outAsset := pool.OutputAsset(key.ZeroForOne)

	priceLimit := num.UintZero()
	if !key.ZeroForOne {
		priceLimit = num.MaxUint()
	}

	deltaA, deltaB, err := e.pool.Swap(pool.ID, key.ZeroForOne, amountIn, priceLimit)
	if err != nil {
		return stagedFill{}, fmt.Errorf("%w: %s", ErrPoolCallFailed, err.Error())
	}

	deltas := []struct {
		asset string
		d     *num.Int
	}{
		{pool.AssetA, deltaA},
		{pool.AssetB, deltaB},
	}
	amountOut := num.UintZero()
	for _, ad := range deltas {
		switch {
		case ad.d == nil || ad.d.IsZero():
			continue
		case ad.d.IsPositive():
			// the ledger owes the pool
			if err := e.assets.Push(ctx, ad.asset, pool.ID, ad.d.U); err != nil {
				return stagedFill{}, fmt.Errorf("%w: %s", types.ErrTransferFailed, err.Error())
			}
			if err := e.pool.Settle(pool.ID, ad.asset, ad.d.U); err != nil {
				return stagedFill{}, fmt.Errorf("%w: %s", ErrPoolCallFailed, err.Error())
			}
		default:
			// the pool owes the ledger, only the order's output asset may
			// be credited against the fill
			if ad.asset != outAsset {
				return stagedFill{}, fmt.Errorf("%w: unspent input asset %s returned by swap", ErrPoolCallFailed, ad.asset)
			}
			if err := e.pool.Take(pool.ID, ad.asset, ad.d.U, e.holding); err != nil {
				return stagedFill{}, fmt.Errorf("%w: %s", ErrPoolCallFailed, err.Error())
			}
			amountOut.AddSum(ad.d.U)
		}
	}

	return stagedFill{
		key:       key,
		order:     order,
		amountIn:  amountIn,
		amountOut: amountOut,
	}, nil
}
