//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashmart/internal/domain/coupon"
	"flashmart/internal/infra/db"
	"flashmart/internal/pkg/clock"
	"flashmart/internal/pkg/config"
	"flashmart/internal/usecase"
	"flashmart/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func quotaKey(code string) string {
	return "coupon_quota:" + code
}

func percentDiscount(t *testing.T, percent int64) coupon.Discount {
	t.Helper()
	d, err := coupon.NewPercentageDiscount(percent)
	require.NoError(t, err)
	return d
}

func seedCoupon(t *testing.T, store *fakes.Store, code string, totalLimit int64, now time.Time) uuid.UUID {
	t.Helper()
	id := uuid.New()
	store.AddCoupon(fakes.CouponRow{
		ID:         id,
		Code:       code,
		Discount:   percentDiscount(t, 20),
		ValidFrom:  now.Add(-time.Hour),
		ValidUntil: now.Add(time.Hour),
		TotalLimit: totalLimit,
		IsActive:   true,
	})
	return id
}

func newCouponEngine(store *fakes.Store, cache *fakes.Cache, uow *fakes.UoW, clk clock.Clock) usecase.CouponCommands {
	cfg := config.NewTestConfig().Inventory
	return usecase.NewCouponUseCase(fakes.NewCouponRepo(store), cache, uow, clk, cfg)
}

func TestCouponValidate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("happy path returns coupon and discount", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 10, now)
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		c, discount, err := engine.Validate(ctx, userID, "SAVE20", 1000)
		require.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, int64(200), discount)

		// Validation warms the quota snapshot.
		cached, ok := cache.Value(quotaKey("SAVE20"))
		require.True(t, ok)
		assert.Equal(t, int64(10), cached)
	})

	t.Run("unknown code", func(t *testing.T) {
		store := fakes.NewStore()
		engine := newCouponEngine(store, fakes.NewCache(), fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err := engine.Validate(ctx, userID, "NOSUCH", 1000)
		assert.ErrorIs(t, err, usecase.ErrCouponNotFound)
	})

	t.Run("outside validity window", func(t *testing.T) {
		store := fakes.NewStore()
		seedCoupon(t, store, "SAVE20", 10, now)
		late := clock.NewMockClock(now.Add(2 * time.Hour))
		engine := newCouponEngine(store, fakes.NewCache(), fakes.NewUoW(), late)

		_, _, err := engine.Validate(ctx, userID, "SAVE20", 1000)
		assert.ErrorIs(t, err, usecase.ErrCouponExpired)
	})

	t.Run("cached zero quota rejects without durable read", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 10, now)
		require.NoError(t, cache.Set(ctx, quotaKey("SAVE20"), 0, 0))
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err := engine.Validate(ctx, userID, "SAVE20", 1000)
		assert.ErrorIs(t, err, usecase.ErrCouponQuotaExceeded)
	})

	t.Run("durably exhausted quota writes zero back to cache", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 3, now)
		store.Coupons["SAVE20"].UsedCount = 3
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err := engine.Validate(ctx, userID, "SAVE20", 1000)
		assert.ErrorIs(t, err, usecase.ErrCouponQuotaExceeded)

		cached, ok := cache.Value(quotaKey("SAVE20"))
		require.True(t, ok)
		assert.Equal(t, int64(0), cached)
	})

	t.Run("stale positive snapshot cannot mask durable exhaustion", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 3, now)
		store.Coupons["SAVE20"].UsedCount = 3
		// Snapshot lagging behind the counters, e.g. after a missed decrement.
		require.NoError(t, cache.Set(ctx, quotaKey("SAVE20"), 2, 0))
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err := engine.Validate(ctx, userID, "SAVE20", 1000)
		assert.ErrorIs(t, err, usecase.ErrCouponQuotaExceeded)

		cached, ok := cache.Value(quotaKey("SAVE20"))
		require.True(t, ok)
		assert.Equal(t, int64(0), cached)
	})

	t.Run("already used by this user", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		id := seedCoupon(t, store, "SAVE20", 10, now)
		repo := fakes.NewCouponRepo(store)
		_, err := repo.MarkUsed(ctx, nil, userID, id, now)
		require.NoError(t, err)
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err = engine.Validate(ctx, userID, "SAVE20", 1000)
		assert.ErrorIs(t, err, usecase.ErrCouponAlreadyUsed)
	})

	t.Run("minimum purchase not met", func(t *testing.T) {
		store := fakes.NewStore()
		id := uuid.New()
		store.AddCoupon(fakes.CouponRow{
			ID:               id,
			Code:             "BIGSPEND",
			Discount:         percentDiscount(t, 10),
			MinPurchaseCents: 5000,
			ValidFrom:        now.Add(-time.Hour),
			ValidUntil:       now.Add(time.Hour),
			IsActive:         true,
		})
		engine := newCouponEngine(store, fakes.NewCache(), fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err := engine.Validate(ctx, userID, "BIGSPEND", 4999)
		assert.ErrorIs(t, err, usecase.ErrMinimumPurchaseNotMet)
	})

	t.Run("unlimited coupon skips quota checks", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "FOREVER", 0, now)
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		_, _, err := engine.Validate(ctx, userID, "FOREVER", 1000)
		require.NoError(t, err)
		_, ok := cache.Value(quotaKey("FOREVER"))
		assert.False(t, ok, "unlimited codes carry no quota snapshot")
	})
}

func TestCouponApplyWithin(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	validated := func(t *testing.T, engine usecase.CouponCommands, user uuid.UUID, code string) *coupon.Coupon {
		t.Helper()
		c, _, err := engine.Validate(ctx, user, code, 1000)
		require.NoError(t, err)
		return c
	}

	t.Run("consumes quota and records usage", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 10, now)
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))
		c := validated(t, engine, userID, "SAVE20")

		require.NoError(t, engine.ApplyWithin(ctx, nil, userID, c))

		assert.Equal(t, int64(1), store.CouponUsedCount("SAVE20"))
		cached, _ := cache.Value(quotaKey("SAVE20"))
		assert.Equal(t, int64(9), cached)
	})

	t.Run("second apply by same user is rejected", func(t *testing.T) {
		store := fakes.NewStore()
		seedCoupon(t, store, "SAVE20", 10, now)
		engine := newCouponEngine(store, fakes.NewCache(), fakes.NewUoW(), clock.NewMockClock(now))
		c := validated(t, engine, userID, "SAVE20")

		require.NoError(t, engine.ApplyWithin(ctx, nil, userID, c))
		err := engine.ApplyWithin(ctx, nil, userID, c)
		assert.ErrorIs(t, err, usecase.ErrCouponAlreadyUsed)
	})

	t.Run("quota exhaustion during apply marks cache", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 1, now)
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))
		c := validated(t, engine, userID, "SAVE20")

		// Another user drains the last unit between Validate and Apply.
		other := uuid.New()
		otherCoupon := validated(t, engine, other, "SAVE20")
		require.NoError(t, engine.ApplyWithin(ctx, nil, other, otherCoupon))

		err := engine.ApplyWithin(ctx, nil, userID, c)
		assert.ErrorIs(t, err, usecase.ErrCouponQuotaExceeded)

		cached, _ := cache.Value(quotaKey("SAVE20"))
		assert.Equal(t, int64(0), cached)
	})
}

func TestCouponQuotaConcurrent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	store := fakes.NewStore()
	cache := fakes.NewCache()
	seedCoupon(t, store, "LIMITED5", 5, now)
	uow := fakes.NewUoW()
	engine := newCouponEngine(store, cache, uow, clock.NewMockClock(now))

	const claimants = 20
	results := make([]error, claimants)

	var g errgroup.Group
	for i := 0; i < claimants; i++ {
		i := i
		userID := uuid.New()
		g.Go(func() error {
			c, _, err := engine.Validate(ctx, userID, "LIMITED5", 1000)
			if err != nil {
				results[i] = err
				return nil
			}
			results[i] = uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
				return engine.ApplyWithin(ctx, tx, userID, c)
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var succeeded int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, usecase.ErrCouponQuotaExceeded):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, int64(5), store.CouponUsedCount("LIMITED5"))
}

func TestCouponSyncQuotaToCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("limited code writes remaining quota", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "SAVE20", 10, now)
		store.Coupons["SAVE20"].UsedCount = 4
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		remaining, err := engine.SyncQuotaToCache(ctx, "SAVE20")
		require.NoError(t, err)
		assert.Equal(t, int64(6), remaining)

		cached, _ := cache.Value(quotaKey("SAVE20"))
		assert.Equal(t, int64(6), cached)
	})

	t.Run("unlimited code reports -1 and writes nothing", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		seedCoupon(t, store, "FOREVER", 0, now)
		engine := newCouponEngine(store, cache, fakes.NewUoW(), clock.NewMockClock(now))

		remaining, err := engine.SyncQuotaToCache(ctx, "FOREVER")
		require.NoError(t, err)
		assert.Equal(t, int64(-1), remaining)
		_, ok := cache.Value(quotaKey("FOREVER"))
		assert.False(t, ok)
	})
}
