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

package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tickbook/tickbook/core/events"
	"github.com/tickbook/tickbook/core/ledger"
	"github.com/tickbook/tickbook/core/ledger/mocks"
	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"
	"github.com/tickbook/tickbook/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*ledger.Engine
	ctrl   *gomock.Controller
	table  *ledger.Table
	assets *mocks.MockAssetTransfer
	claims *mocks.MockClaimLedger
	broker *mocks.MockBroker
	pool   *types.PoolContext
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	assets := mocks.NewMockAssetTransfer(ctrl)
	claims := mocks.NewMockClaimLedger(ctrl)
	broker := mocks.NewMockBroker(ctrl)
	table := ledger.NewTable()
	eng := ledger.New(
		logging.NewTestLogger(),
		ledger.NewDefaultConfig(),
		table,
		assets,
		claims,
		broker,
	)
	return &testEngine{
		Engine: eng,
		ctrl:   ctrl,
		table:  table,
		assets: assets,
		claims: claims,
		broker: broker,
		pool:   types.NewPoolContext("ETH", "USDC", 60),
	}
}

func (te *testEngine) Finish() {
	te.ctrl.Finish()
}

func TestPlaceOrder(t *testing.T) {
	t.Run("Deposit mints receipts one to one", testPlaceOrderSuccess)
	t.Run("Deposits at the same key accumulate", testPlaceOrderAccumulates)
	t.Run("Zero amount is rejected", testPlaceOrderZeroAmount)
	t.Run("Transfer failure leaves no order state", testPlaceOrderTransferFails)
}

func TestCancelOrder(t *testing.T) {
	t.Run("Cancel refunds the full claim balance", testCancelOrderRoundTrip)
	t.Run("Cancel without receipts is rejected", testCancelOrderNoClaim)
	t.Run("Receipts above pending balance fail the books", testCancelOrderInsufficientPending)
}

func testPlaceOrderSuccess(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()

	party := "party-1"
	amount := num.NewUint(1000)
	key := types.OrderKey{Pool: eng.pool.ID, Tick: 120, ZeroForOne: true}

	eng.assets.EXPECT().Pull(gomock.Any(), "ETH", party, amount).Times(1).Return(nil)
	eng.claims.EXPECT().Mint(party, key.ID(), amount).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1).Do(func(evt events.Event) {
		e, ok := evt.(*events.OrderPlaced)
		require.True(t, ok)
		assert.Equal(t, key, e.OrderKey())
		assert.Equal(t, party, e.Party())
		assert.True(t, e.Amount().EQ(amount))
	})

	minted, err := eng.PlaceOrder(ctx, party, eng.pool, 120, amount, true)
	require.NoError(t, err)
	assert.True(t, minted.EQ(amount))

	order, ok := eng.table.Get(key)
	require.True(t, ok)
	assert.True(t, order.Exists)
	assert.True(t, order.PendingIn.EQ(amount))
	assert.True(t, order.FilledOut.IsZero())
}

func testPlaceOrderAccumulates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()

	key := types.OrderKey{Pool: eng.pool.ID, Tick: -60, ZeroForOne: false}

	eng.assets.EXPECT().Pull(gomock.Any(), "USDC", gomock.Any(), gomock.Any()).Times(2).Return(nil)
	eng.claims.EXPECT().Mint(gomock.Any(), key.ID(), gomock.Any()).Times(2).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(2)

	_, err := eng.PlaceOrder(ctx, "party-1", eng.pool, -60, num.NewUint(300), false)
	require.NoError(t, err)
	_, err = eng.PlaceOrder(ctx, "party-2", eng.pool, -60, num.NewUint(200), false)
	require.NoError(t, err)

	order, ok := eng.table.Get(key)
	require.True(t, ok)
	assert.True(t, order.PendingIn.EQ(num.NewUint(500)))
}

func testPlaceOrderZeroAmount(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()

	_, err := eng.PlaceOrder(context.Background(), "party-1", eng.pool, 120, num.UintZero(), true)
	assert.ErrorIs(t, err, types.ErrInvalidAmount)

	_, err = eng.PlaceOrder(context.Background(), "party-1", eng.pool, 120, nil, true)
	assert.ErrorIs(t, err, types.ErrInvalidAmount)

	assert.Zero(t, eng.table.Len())
}

func testPlaceOrderTransferFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()

	eng.assets.EXPECT().Pull(gomock.Any(), "ETH", "party-1", gomock.Any()).
		Times(1).Return(errors.New("account not found"))

	_, err := eng.PlaceOrder(context.Background(), "party-1", eng.pool, 120, num.NewUint(100), true)
	assert.ErrorIs(t, err, types.ErrTransferFailed)
	assert.Zero(t, eng.table.Len())
}

func testCancelOrderRoundTrip(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()

	party := "party-1"
	amount := num.NewUint(750)
	key := types.OrderKey{Pool: eng.pool.ID, Tick: 120, ZeroForOne: true}

	eng.assets.EXPECT().Pull(gomock.Any(), "ETH", party, amount).Times(1).Return(nil)
	eng.claims.EXPECT().Mint(party, key.ID(), amount).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(2)

	_, err := eng.PlaceOrder(ctx, party, eng.pool, 120, amount, true)
	require.NoError(t, err)

	eng.claims.EXPECT().BalanceOf(party, key.ID()).Times(1).Return(amount.Clone())
	eng.claims.EXPECT().Burn(party, key.ID(), gomock.Any()).Times(1).Return(nil)
	eng.assets.EXPECT().Push(gomock.Any(), "ETH", party, gomock.Any()).Times(1).Return(nil)

	refund, err := eng.CancelOrder(ctx, party, eng.pool, 120, true)
	require.NoError(t, err)
	assert.True(t, refund.EQ(amount))

	order, ok := eng.table.Get(key)
	require.True(t, ok)
	assert.True(t, order.PendingIn.IsZero())
	assert.True(t, order.Exists)
}

func testCancelOrderNoClaim(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()

	key := types.OrderKey{Pool: eng.pool.ID, Tick: 120, ZeroForOne: true}
	eng.claims.EXPECT().BalanceOf("party-1", key.ID()).Times(1).Return(num.UintZero())

	_, err := eng.CancelOrder(context.Background(), "party-1", eng.pool, 120, true)
	assert.ErrorIs(t, err, ledger.ErrNoClaim)
}

func testCancelOrderInsufficientPending(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()

	// receipts exist but the slot was never deposited into, the books no
	// longer reconcile and nothing may move
	key := types.OrderKey{Pool: eng.pool.ID, Tick: 120, ZeroForOne: true}
	eng.claims.EXPECT().BalanceOf("party-1", key.ID()).Times(1).Return(num.NewUint(100))

	_, err := eng.CancelOrder(context.Background(), "party-1", eng.pool, 120, true)
	assert.ErrorIs(t, err, ledger.ErrInsufficientPending)
}
