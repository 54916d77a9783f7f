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

package hook_test

import (
	"context"
	"errors"
	"testing"

	"github.com/tickbook/tickbook/core/events"
	"github.com/tickbook/tickbook/core/hook"
	"github.com/tickbook/tickbook/core/hook/mocks"
	"github.com/tickbook/tickbook/core/types"
	"github.com/tickbook/tickbook/libs/num"
	"github.com/tickbook/tickbook/logging"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEngine struct {
	*hook.Engine
	ctrl   *gomock.Controller
	pool   *mocks.MockPool
	assets *mocks.MockAssetTransfer
	claims *mocks.MockClaimLedger
	broker *mocks.MockBroker
}

func getTestEngine(t *testing.T) *testEngine {
	t.Helper()
	ctrl := gomock.NewController(t)
	pool := mocks.NewMockPool(ctrl)
	assets := mocks.NewMockAssetTransfer(ctrl)
	claims := mocks.NewMockClaimLedger(ctrl)
	broker := mocks.NewMockBroker(ctrl)
	eng := hook.New(
		logging.NewTestLogger(),
		hook.NewDefaultConfig(),
		pool,
		assets,
		claims,
		broker,
	)
	return &testEngine{
		Engine: eng,
		ctrl:   ctrl,
		pool:   pool,
		assets: assets,
		claims: claims,
		broker: broker,
	}
}

func (te *testEngine) Finish() {
	te.ctrl.Finish()
}

// registerPool registers the canonical test pool, swallowing the event.
func (te *testEngine) registerPool(t *testing.T) *types.PoolContext {
	t.Helper()
	te.broker.EXPECT().Send(gomock.Any()).Times(1)
	pc, err := te.RegisterPool(context.Background(), "ETH", "USDC", 60)
	require.NoError(t, err)
	return pc
}

func TestRegisterPool(t *testing.T) {
	t.Run("Registration derives a stable identifier", testRegisterPoolSuccess)
	t.Run("Non-positive tick spacing is rejected", testRegisterPoolBadSpacing)
	t.Run("Registering the same configuration twice fails", testRegisterPoolDuplicate)
}

func TestHookOperations(t *testing.T) {
	t.Run("Operations against unknown pools are rejected", testUnknownPool)
	t.Run("Place order runs through to the ledger", testPlaceOrderDelegates)
	t.Run("Get order returns a detached copy", testGetOrderClones)
}

func TestOnSwapCompleted(t *testing.T) {
	t.Run("Trade completion fills the crossed order", testSwapCompletedFills)
	t.Run("Current tick failure surfaces as a pool error", testSwapCompletedTickFails)
	t.Run("Collaborator callbacks on a busy key are rejected", testReentrantCallback)
}

func testRegisterPoolSuccess(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()

	eng.broker.EXPECT().Send(gomock.Any()).Times(1).Do(func(evt events.Event) {
		e, ok := evt.(*events.PoolRegistered)
		require.True(t, ok)
		assert.Equal(t, "ETH", e.Pool().AssetA)
	})

	pc, err := eng.RegisterPool(context.Background(), "ETH", "USDC", 60)
	require.NoError(t, err)
	assert.NotEmpty(t, pc.ID)

	got, err := eng.PoolByID(pc.ID)
	require.NoError(t, err)
	assert.Equal(t, pc, got)
}

func testRegisterPoolBadSpacing(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()

	_, err := eng.RegisterPool(context.Background(), "ETH", "USDC", 0)
	assert.ErrorIs(t, err, hook.ErrInvalidTickSpacing)
	_, err = eng.RegisterPool(context.Background(), "ETH", "USDC", -10)
	assert.ErrorIs(t, err, hook.ErrInvalidTickSpacing)
}

func testRegisterPoolDuplicate(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	eng.registerPool(t)

	_, err := eng.RegisterPool(context.Background(), "ETH", "USDC", 60)
	assert.ErrorIs(t, err, hook.ErrPoolAlreadyRegistered)
}

func testUnknownPool(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()

	_, err := eng.PlaceOrder(ctx, "party-1", "no-such-pool", 60, num.NewUint(100), true)
	assert.ErrorIs(t, err, hook.ErrUnknownPool)
	_, err = eng.CancelOrder(ctx, "party-1", "no-such-pool", 60, true)
	assert.ErrorIs(t, err, hook.ErrUnknownPool)
	_, err = eng.Redeem(ctx, "party-1", "no-such-pool", 60, true, num.NewUint(100), "party-1")
	assert.ErrorIs(t, err, hook.ErrUnknownPool)
	assert.ErrorIs(t, eng.OnSwapCompleted(ctx, "no-such-pool"), hook.ErrUnknownPool)
}

func testPlaceOrderDelegates(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()
	pc := eng.registerPool(t)

	amount := num.NewUint(1000)
	key := types.OrderKey{Pool: pc.ID, Tick: 120, ZeroForOne: true}

	eng.assets.EXPECT().Pull(gomock.Any(), "ETH", "party-1", amount).Times(1).Return(nil)
	eng.claims.EXPECT().Mint("party-1", key.ID(), amount).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)

	minted, err := eng.PlaceOrder(ctx, "party-1", pc.ID, 120, amount, true)
	require.NoError(t, err)
	assert.True(t, minted.EQ(amount))

	order, ok := eng.GetOrder(pc.ID, 120, true)
	require.True(t, ok)
	assert.True(t, order.PendingIn.EQ(amount))
}

func testGetOrderClones(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()
	pc := eng.registerPool(t)

	eng.assets.EXPECT().Pull(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.claims.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)

	_, err := eng.PlaceOrder(ctx, "party-1", pc.ID, 120, num.NewUint(100), true)
	require.NoError(t, err)

	order, ok := eng.GetOrder(pc.ID, 120, true)
	require.True(t, ok)
	order.PendingIn.AddSum(num.NewUint(900))

	fresh, ok := eng.GetOrder(pc.ID, 120, true)
	require.True(t, ok)
	assert.True(t, fresh.PendingIn.EQ(num.NewUint(100)))

	_, ok = eng.GetOrder(pc.ID, 180, true)
	assert.False(t, ok)
}

func testSwapCompletedFills(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()
	pc := eng.registerPool(t)

	amount := num.NewUint(1000)
	out := num.NewUint(1800)

	eng.assets.EXPECT().Pull(gomock.Any(), "ETH", "party-1", amount).Times(1).Return(nil)
	eng.claims.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)
	_, err := eng.PlaceOrder(ctx, "party-1", pc.ID, 60, amount, true)
	require.NoError(t, err)

	eng.pool.EXPECT().CurrentTick(pc.ID).Times(1).Return(int64(95), nil)
	eng.pool.EXPECT().Swap(pc.ID, true, amount, num.UintZero()).Times(1).
		Return(num.NewInt(1000), num.IntFromUint(out, false), nil)
	eng.assets.EXPECT().Push(gomock.Any(), "ETH", pc.ID, amount).Times(1).Return(nil)
	eng.pool.EXPECT().Settle(pc.ID, "ETH", amount).Times(1).Return(nil)
	eng.pool.EXPECT().Take(pc.ID, "USDC", out, "tickbook-holding").Times(1).Return(nil)
	eng.broker.EXPECT().SendBatch(gomock.Any()).Times(1)

	require.NoError(t, eng.OnSwapCompleted(ctx, pc.ID))

	order, ok := eng.GetOrder(pc.ID, 60, true)
	require.True(t, ok)
	assert.True(t, order.PendingIn.IsZero())
	assert.True(t, order.FilledOut.EQ(out))
}

func testSwapCompletedTickFails(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	pc := eng.registerPool(t)

	eng.pool.EXPECT().CurrentTick(pc.ID).Times(1).Return(int64(0), errors.New("pool is locked"))

	err := eng.OnSwapCompleted(context.Background(), pc.ID)
	assert.ErrorIs(t, err, hook.ErrPoolCallFailed)
}

func testReentrantCallback(t *testing.T) {
	eng := getTestEngine(t)
	defer eng.Finish()
	ctx := context.Background()
	pc := eng.registerPool(t)

	amount := num.NewUint(1000)

	eng.assets.EXPECT().Pull(gomock.Any(), "ETH", "party-1", amount).Times(1).Return(nil)
	eng.claims.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
	eng.broker.EXPECT().Send(gomock.Any()).Times(1)
	_, err := eng.PlaceOrder(ctx, "party-1", pc.ID, 60, amount, true)
	require.NoError(t, err)

	eng.pool.EXPECT().CurrentTick(pc.ID).Times(1).Return(int64(60), nil)
	eng.pool.EXPECT().Swap(pc.ID, true, gomock.Any(), gomock.Any()).Times(1).
		DoAndReturn(func(string, bool, *num.Uint, *num.Uint) (*num.Int, *num.Int, error) {
			// the collaborator turns around and hits the busy key
			_, err := eng.PlaceOrder(ctx, "party-2", pc.ID, 60, num.NewUint(10), true)
			assert.ErrorIs(t, err, hook.ErrReentrantCall)
			_, err = eng.CancelOrder(ctx, "party-1", pc.ID, 60, true)
			assert.ErrorIs(t, err, hook.ErrReentrantCall)
			// a different key is not blocked by the running operation
			eng.assets.EXPECT().Pull(gomock.Any(), "ETH", "party-2", gomock.Any()).Times(1).Return(nil)
			eng.claims.EXPECT().Mint(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil)
			eng.broker.EXPECT().Send(gomock.Any()).Times(1)
			_, err = eng.PlaceOrder(ctx, "party-2", pc.ID, 240, num.NewUint(10), true)
			assert.NoError(t, err)
			return nil, num.NewInt(-1500), nil
		})
	eng.pool.EXPECT().Take(pc.ID, "USDC", num.NewUint(1500), "tickbook-holding").Times(1).Return(nil)
	eng.broker.EXPECT().SendBatch(gomock.Any()).Times(1)

	require.NoError(t, eng.OnSwapCompleted(ctx, pc.ID))

	order, ok := eng.GetOrder(pc.ID, 60, true)
	require.True(t, ok)
	assert.True(t, order.FilledOut.EQ(num.NewUint(1500)))
}
