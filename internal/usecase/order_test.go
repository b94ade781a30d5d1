//go:build unit

package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"flashmart/internal/domain/order"
	"flashmart/internal/pkg/clock"
	"flashmart/internal/pkg/config"
	"flashmart/internal/usecase"
	"flashmart/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	store  *fakes.Store
	cache  *fakes.Cache
	clk    *clock.MockClock
	orders usecase.OrderCommands
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()

	store := fakes.NewStore()
	cache := fakes.NewCache()
	uow := fakes.NewUoW()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	cfg := config.NewTestConfig().Inventory

	stockCmds := usecase.NewStockUseCase(fakes.NewStockRepo(store), cache, uow, cfg)
	couponCmds := usecase.NewCouponUseCase(fakes.NewCouponRepo(store), cache, uow, clk, cfg)
	orders := usecase.NewOrderUseCase(
		fakes.NewOrderRepo(store),
		fakes.NewProductRepo(store),
		stockCmds,
		couponCmds,
		fakes.NewOrderReads(store),
		cache,
		uow,
		clk,
		cfg,
	)

	return &orderFixture{store: store, cache: cache, clk: clk, orders: orders}
}

// resetRateLimit frees the per-user placement window so one test can place
// several orders for the same user.
func (f *orderFixture) resetRateLimit(userID uuid.UUID) {
	f.cache.Delete("rate_limit:order:" + userID.String())
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("single item without coupon", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("oat milk", 350, 10)

		view, err := f.orders.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
			Items: []order.LineItemInput{{ProductID: productID, Quantity: 2}},
		})
		require.NoError(t, err)

		assert.Equal(t, userID, view.UserID)
		assert.Equal(t, order.StatusPending.String(), view.Status)
		assert.Equal(t, int64(700), view.SubtotalCents)
		assert.Equal(t, int64(0), view.DiscountCents)
		assert.Equal(t, int64(700), view.TotalCents)
		require.Len(t, view.Items, 1)
		assert.Equal(t, "oat milk", view.Items[0].ProductName)
		assert.Equal(t, int64(350), view.Items[0].PriceCents)

		assert.Equal(t, int64(8), f.store.StockQuantity(productID))
		cached, _ := f.cache.Value("stock:" + productID.String())
		assert.Equal(t, int64(8), cached)
	})

	t.Run("coupon discount is applied to the total", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("rib eye", 2500, 5)
		now := f.clk.Now()
		f.store.AddCoupon(fakes.CouponRow{
			ID:         uuid.New(),
			Code:       "MEAT20",
			Discount:   percentDiscount(t, 20),
			ValidFrom:  now.Add(-time.Hour),
			ValidUntil: now.Add(time.Hour),
			TotalLimit: 100,
			IsActive:   true,
		})

		view, err := f.orders.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
			Items:      []order.LineItemInput{{ProductID: productID, Quantity: 2}},
			CouponCode: "MEAT20",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(5000), view.SubtotalCents)
		assert.Equal(t, int64(1000), view.DiscountCents)
		assert.Equal(t, int64(4000), view.TotalCents)
		require.NotNil(t, view.CouponCode)
		assert.Equal(t, "MEAT20", *view.CouponCode)

		assert.Equal(t, int64(1), f.store.CouponUsedCount("MEAT20"))
	})

	t.Run("empty order", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.orders.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{})
		assert.ErrorIs(t, err, usecase.ErrEmptyOrder)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		f := newOrderFixture(t)
		productID := f.store.AddProduct("oat milk", 350, 10)
		_, err := f.orders.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
			Items: []order.LineItemInput{{ProductID: productID, Quantity: 0}},
		})
		assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		f := newOrderFixture(t)
		_, err := f.orders.PlaceOrder(ctx, uuid.New(), usecase.PlaceOrderInput{
			Items: []order.LineItemInput{{ProductID: uuid.New(), Quantity: 1}},
		})
		assert.ErrorIs(t, err, usecase.ErrProductNotFound)
	})

	t.Run("insufficient stock aborts without persisting an order", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("truffle", 9000, 1)

		_, err := f.orders.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
			Items: []order.LineItemInput{{ProductID: productID, Quantity: 2}},
		})
		assert.ErrorIs(t, err, usecase.ErrInsufficientStock)

		assert.Empty(t, f.store.Orders)
		assert.Equal(t, int64(1), f.store.StockQuantity(productID))
	})

	t.Run("failed coupon apply rolls cache reservations back", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("salmon", 1200, 10)
		now := f.clk.Now()
		couponID := uuid.New()
		f.store.AddCoupon(fakes.CouponRow{
			ID:         couponID,
			Code:       "ONESHOT",
			Discount:   percentDiscount(t, 10),
			ValidFrom:  now.Add(-time.Hour),
			ValidUntil: now.Add(time.Hour),
			TotalLimit: 1,
			IsActive:   true,
		})
		// The last quota unit is consumed after validation would pass, so
		// the apply inside the placement transaction fails.
		f.store.Coupons["ONESHOT"].UsedCount = 1
		f.cache.Delete("coupon_quota:ONESHOT")
		require.NoError(t, f.cache.Set(ctx, "coupon_quota:ONESHOT", 1, 0))

		_, err := f.orders.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
			Items:      []order.LineItemInput{{ProductID: productID, Quantity: 3}},
			CouponCode: "ONESHOT",
		})
		assert.ErrorIs(t, err, usecase.ErrCouponQuotaExceeded)

		cached, _ := f.cache.Value("stock:" + productID.String())
		assert.Equal(t, int64(10), cached, "stock cache reservation must be rolled back")
	})

	t.Run("rate limit rejects back-to-back placements", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("oat milk", 350, 10)
		input := usecase.PlaceOrderInput{
			Items: []order.LineItemInput{{ProductID: productID, Quantity: 1}},
		}

		_, err := f.orders.PlaceOrder(ctx, userID, input)
		require.NoError(t, err)

		_, err = f.orders.PlaceOrder(ctx, userID, input)
		assert.ErrorIs(t, err, usecase.ErrRateLimitExceeded)

		f.resetRateLimit(userID)
		_, err = f.orders.PlaceOrder(ctx, userID, input)
		assert.NoError(t, err)
	})
}

func TestPlaceOrderLockOrdering(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)

	a := f.store.AddProduct("apples", 100, 100)
	b := f.store.AddProduct("bananas", 100, 100)

	// Two orders list the same products in opposite input order. Both must
	// complete, and each must decrement the rows in the same global order.
	user1, user2 := uuid.New(), uuid.New()
	_, err := f.orders.PlaceOrder(ctx, user1, usecase.PlaceOrderInput{
		Items: []order.LineItemInput{
			{ProductID: a, Quantity: 1},
			{ProductID: b, Quantity: 1},
		},
	})
	require.NoError(t, err)
	_, err = f.orders.PlaceOrder(ctx, user2, usecase.PlaceOrderInput{
		Items: []order.LineItemInput{
			{ProductID: b, Quantity: 1},
			{ProductID: a, Quantity: 1},
		},
	})
	require.NoError(t, err)

	log := f.store.DecrementLog
	require.Len(t, log, 4)
	for i := 0; i < len(log); i += 2 {
		pair := []string{log[i].String(), log[i+1].String()}
		assert.True(t, sort.StringsAreSorted(pair),
			"stock rows must be decremented in ascending product id order")
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	ctx := context.Background()

	place := func(t *testing.T, f *orderFixture, userID uuid.UUID, productID uuid.UUID, qty int64) uuid.UUID {
		t.Helper()
		view, err := f.orders.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
			Items: []order.LineItemInput{{ProductID: productID, Quantity: qty}},
		})
		require.NoError(t, err)
		return view.ID
	}

	t.Run("cancel restores stock and cache", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("oat milk", 350, 10)
		orderID := place(t, f, userID, productID, 4)
		require.Equal(t, int64(6), f.store.StockQuantity(productID))

		require.NoError(t, f.orders.Cancel(ctx, orderID))

		assert.Equal(t, order.StatusCancelled, f.store.Orders[orderID].Status)
		assert.Equal(t, int64(10), f.store.StockQuantity(productID))
		cached, _ := f.cache.Value("stock:" + productID.String())
		assert.Equal(t, int64(10), cached)
	})

	t.Run("refund after payment restores stock", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("oat milk", 350, 10)
		orderID := place(t, f, userID, productID, 2)

		require.NoError(t, f.orders.MarkPaid(ctx, orderID, "pay_123"))
		require.NoError(t, f.orders.UpdateStatus(ctx, orderID, order.StatusRefunded))

		assert.Equal(t, order.StatusRefunded, f.store.Orders[orderID].Status)
		assert.Equal(t, int64(10), f.store.StockQuantity(productID))
	})

	t.Run("shipping keeps stock decremented", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("oat milk", 350, 10)
		orderID := place(t, f, userID, productID, 2)

		require.NoError(t, f.orders.MarkPaid(ctx, orderID, "pay_123"))
		require.NoError(t, f.orders.UpdateStatus(ctx, orderID, order.StatusShipped))

		assert.Equal(t, int64(8), f.store.StockQuantity(productID))
	})

	t.Run("illegal transitions are rejected", func(t *testing.T) {
		f := newOrderFixture(t)
		userID := uuid.New()
		productID := f.store.AddProduct("oat milk", 350, 10)
		orderID := place(t, f, userID, productID, 1)

		err := f.orders.UpdateStatus(ctx, orderID, order.StatusShipped)
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)

		require.NoError(t, f.orders.Cancel(ctx, orderID))
		err = f.orders.Cancel(ctx, orderID)
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newOrderFixture(t)
		assert.ErrorIs(t, f.orders.Cancel(ctx, uuid.New()), usecase.ErrOrderNotFound)
	})
}

func TestOrderMarkPaid(t *testing.T) {
	ctx := context.Background()
	f := newOrderFixture(t)
	userID := uuid.New()
	productID := f.store.AddProduct("oat milk", 350, 10)

	view, err := f.orders.PlaceOrder(ctx, userID, usecase.PlaceOrderInput{
		Items: []order.LineItemInput{{ProductID: productID, Quantity: 1}},
	})
	require.NoError(t, err)

	t.Run("requires a payment id", func(t *testing.T) {
		assert.Error(t, f.orders.MarkPaid(ctx, view.ID, ""))
	})

	t.Run("records the payment reference", func(t *testing.T) {
		require.NoError(t, f.orders.MarkPaid(ctx, view.ID, "pay_abc"))

		stored := f.store.Orders[view.ID]
		assert.Equal(t, order.StatusPaid, stored.Status)
		require.NotNil(t, stored.PaymentID)
		assert.Equal(t, "pay_abc", *stored.PaymentID)
	})

	t.Run("cannot pay twice", func(t *testing.T) {
		err := f.orders.MarkPaid(ctx, view.ID, "pay_again")
		assert.ErrorIs(t, err, usecase.ErrInvalidStatusTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		assert.ErrorIs(t, f.orders.MarkPaid(ctx, uuid.New(), "pay_x"), usecase.ErrOrderNotFound)
	})
}
