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

package redemption

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
	// ErrInsufficientClaim is returned when the caller holds fewer claim
	// receipts than the amount they try to redeem.
	ErrInsufficientClaim = errors.New("insufficient claim receipts")
	// ErrNothingToRedeem is returned when the order has no filled proceeds.
	ErrNothingToRedeem = errors.New("order has no filled proceeds")
)

// ClaimLedger is the fungible claim-receipt collaborator.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/claim_ledger_mock.go -package mocks github.com/tickbook/tickbook/core/redemption ClaimLedger
type ClaimLedger interface {
	Mint(holder, keyID string, amount *num.Uint) error
	Burn(holder, keyID string, amount *num.Uint) error
	BalanceOf(holder, keyID string) *num.Uint
	TotalSupply(keyID string) *num.Uint
}

// AssetTransfer moves fungible assets out of ledger custody.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/asset_transfer_mock.go -package mocks github.com/tickbook/tickbook/core/redemption AssetTransfer
type AssetTransfer interface {
	Pull(ctx context.Context, asset, from string, amount *num.Uint) error
	Push(ctx context.Context, asset, to string, amount *num.Uint) error
}

// OrderStore gives the engine access to the order arena.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/order_store_mock.go -package mocks github.com/tickbook/tickbook/core/redemption OrderStore
type OrderStore interface {
	Get(key types.OrderKey) (*types.Order, bool)
}

// Broker - the event bus broker, send events here.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/broker_mock.go -package mocks github.com/tickbook/tickbook/core/redemption Broker
type Broker interface {
	Send(event events.Event)
	SendBatch(events []events.Event)
}

// Engine computes each claim holder's proportional share of filled
// proceeds and pays it out against burned receipts.
type Engine struct {
	Config
	log *logging.Logger

	store  OrderStore
	assets AssetTransfer
	claims ClaimLedger
	broker Broker
}

// New instantiates a new instance of the redemption engine.
func New(log *logging.Logger, conf Config, store OrderStore, assets AssetTransfer, claims ClaimLedger, broker Broker) *Engine {
	// setup logger
	log = log.Named(namedLogger)
	log.SetLevel(conf.Level.Get())

	return &Engine{
		Config: conf,
		log:    log,
		store:  store,
		assets: assets,
		claims: claims,
		broker: broker,
	}
}

// ReloadConf update the internal configuration of the redemption engine.
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

// Redeem burns amount claim receipts and releases the caller's
// proportional share of the order's filled proceeds to the given account.
// The share is amount over the total outstanding receipt supply for the
// key, so partial redemptions by one holder leave the remaining holders'
// shares intact.
func (e *Engine) Redeem(ctx context.Context, party string, pool *types.PoolContext, tick int64, zeroForOne bool, amount *num.Uint, to string) (*num.Uint, error) {
	defer metrics.EngineTimeCounterAdd(time.Now(), pool.ID, "redemption", "Redeem")

	if amount == nil || amount.IsZero() {
		return nil, types.ErrInvalidAmount
	}

	key := types.OrderKey{Pool: pool.ID, Tick: tick, ZeroForOne: zeroForOne}
	keyID := key.ID()

	balance := e.claims.BalanceOf(party, keyID)
	if balance == nil || balance.LT(amount) {
		return nil, ErrInsufficientClaim
	}

	order, ok := e.store.Get(key)
	if !ok || order.FilledOut.IsZero() {
		return nil, ErrNothingToRedeem
	}

	supply := e.claims.TotalSupply(keyID)
	if supply == nil || supply.IsZero() {
		// receipts were verified above, a zero supply means the claim
		// ledger no longer reconciles with itself
		e.log.Error("zero claim supply with a non-zero holder balance",
			logging.Party(party),
			logging.OrderKeyID(keyID),
		)
		return nil, ErrInsufficientClaim
	}

	// released = filledOut * amount / totalSupply
	released := num.MulDiv(order.FilledOut, amount, supply)

	if err := e.claims.Burn(party, keyID, amount); err != nil {
		return nil, fmt.Errorf("couldn't burn claim receipts: %w", err)
	}
	if !released.IsZero() {
		if err := e.assets.Push(ctx, pool.OutputAsset(zeroForOne), to, released); err != nil {
			return nil, fmt.Errorf("%w: %s", types.ErrTransferFailed, err.Error())
		}
	}

	order.FilledOut.Sub(order.FilledOut, released)

	if e.log.IsDebug() {
		share := amount.ToDecimal().Div(supply.ToDecimal())
		e.log.Debug("proceeds redeemed",
			logging.Party(party),
			logging.PoolID(pool.ID),
			logging.Tick(tick),
			logging.String("burned", amount.String()),
			logging.String("share", share.String()),
			logging.String("released", released.String()),
		)
	}
	metrics.OrderCounterInc(pool.ID, "redeemed")
	e.broker.Send(events.NewProceedsRedeemed(ctx, key, party, to, amount, released))

	return released, nil
}
