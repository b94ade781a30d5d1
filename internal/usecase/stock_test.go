//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"flashmart/internal/domain/product"
	"flashmart/internal/pkg/config"
	"flashmart/internal/usecase"
	"flashmart/tests/common/fakes"
	usecasemock "flashmart/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func stockKey(productID uuid.UUID) string {
	return "stock:" + productID.String()
}

func newStockEngine(store *fakes.Store, cache *fakes.Cache) usecase.StockCommands {
	cfg := config.NewTestConfig().Inventory
	return usecase.NewStockUseCase(fakes.NewStockRepo(store), cache, fakes.NewUoW(), cfg)
}

func TestStockDecrease(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements durable stock and cache", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		productID := store.AddProduct("milk", 250, 10)
		engine := newStockEngine(store, cache)

		require.NoError(t, engine.Decrease(ctx, productID, 3))

		assert.Equal(t, int64(7), store.StockQuantity(productID))
		cached, ok := cache.Value(stockKey(productID))
		require.True(t, ok)
		assert.Equal(t, int64(7), cached)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		store := fakes.NewStore()
		productID := store.AddProduct("milk", 250, 10)
		engine := newStockEngine(store, fakes.NewCache())

		assert.ErrorIs(t, engine.Decrease(ctx, productID, 0), usecase.ErrInvalidQuantity)
		assert.ErrorIs(t, engine.Decrease(ctx, productID, -1), usecase.ErrInvalidQuantity)
	})

	t.Run("unknown product", func(t *testing.T) {
		store := fakes.NewStore()
		engine := newStockEngine(store, fakes.NewCache())

		assert.ErrorIs(t, engine.Decrease(ctx, uuid.New(), 1), usecase.ErrStockNotFound)
	})

	t.Run("fast path rejects oversell without touching durable stock", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		productID := store.AddProduct("milk", 250, 5)
		require.NoError(t, cache.Set(ctx, stockKey(productID), 5, 0))
		engine := newStockEngine(store, cache)

		err := engine.Decrease(ctx, productID, 6)
		assert.ErrorIs(t, err, usecase.ErrInsufficientStock)

		assert.Equal(t, int64(5), store.StockQuantity(productID))
		cached, _ := cache.Value(stockKey(productID))
		assert.Equal(t, int64(5), cached, "failed reservation must be undone in cache")
	})

	t.Run("durable path rejects oversell when cache is down", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		cache.Fail = errors.New("connection refused")
		productID := store.AddProduct("milk", 250, 5)
		engine := newStockEngine(store, cache)

		assert.ErrorIs(t, engine.Decrease(ctx, productID, 6), usecase.ErrInsufficientStock)
		assert.Equal(t, int64(5), store.StockQuantity(productID))
	})

	t.Run("cache down falls back to durable path", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		cache.Fail = errors.New("connection refused")
		productID := store.AddProduct("milk", 250, 5)
		engine := newStockEngine(store, cache)

		require.NoError(t, engine.Decrease(ctx, productID, 2))
		assert.Equal(t, int64(3), store.StockQuantity(productID))
	})
}

func TestStockDecreaseConcurrent(t *testing.T) {
	ctx := context.Background()
	store := fakes.NewStore()
	cache := fakes.NewCache()
	productID := store.AddProduct("flash sale item", 9900, 10)
	require.NoError(t, cache.Set(ctx, stockKey(productID), 10, 0))
	engine := newStockEngine(store, cache)

	const buyers = 20
	results := make([]error, buyers)

	var g errgroup.Group
	for i := 0; i < buyers; i++ {
		i := i
		g.Go(func() error {
			results[i] = engine.Decrease(ctx, productID, 1)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, usecase.ErrInsufficientStock):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, rejected)
	assert.Equal(t, int64(0), store.StockQuantity(productID))
}

func TestStockDecreaseRetry(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig().Inventory

	t.Run("retries on version conflict and succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockStockRepository(ctrl)
		cache := fakes.NewCache()
		cache.Fail = errors.New("cache offline")
		productID := uuid.New()

		// First attempt loses the version race, second attempt wins.
		gomock.InOrder(
			repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), productID).
				Return(&product.Stock{ProductID: productID, Quantity: 10, Version: 1}, nil),
			repo.EXPECT().DecrementIfAvailable(gomock.Any(), gomock.Any(), productID, int64(1), int64(1)).
				Return(false, nil),
			repo.EXPECT().Get(gomock.Any(), gomock.Any(), productID).
				Return(&product.Stock{ProductID: productID, Quantity: 10, Version: 2}, nil),
			repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), productID).
				Return(&product.Stock{ProductID: productID, Quantity: 10, Version: 2}, nil),
			repo.EXPECT().DecrementIfAvailable(gomock.Any(), gomock.Any(), productID, int64(1), int64(2)).
				Return(true, nil),
		)

		engine := usecase.NewStockUseCase(repo, cache, fakes.NewUoW(), cfg)
		assert.NoError(t, engine.Decrease(ctx, productID, 1))
	})

	t.Run("surfaces conflict after max retries and rolls cache back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := usecasemock.NewMockStockRepository(ctrl)
		cache := fakes.NewCache()
		productID := uuid.New()
		require.NoError(t, cache.Set(ctx, stockKey(productID), 10, 0))

		version := int64(1)
		repo.EXPECT().GetForUpdate(gomock.Any(), gomock.Any(), productID).
			Times(cfg.MaxRetries).
			DoAndReturn(func(context.Context, any, uuid.UUID) (*product.Stock, error) {
				return &product.Stock{ProductID: productID, Quantity: 10, Version: version}, nil
			})
		repo.EXPECT().DecrementIfAvailable(gomock.Any(), gomock.Any(), productID, int64(1), gomock.Any()).
			Times(cfg.MaxRetries).
			Return(false, nil)
		repo.EXPECT().Get(gomock.Any(), gomock.Any(), productID).
			Times(cfg.MaxRetries).
			DoAndReturn(func(context.Context, any, uuid.UUID) (*product.Stock, error) {
				version++
				return &product.Stock{ProductID: productID, Quantity: 10, Version: version}, nil
			})

		engine := usecase.NewStockUseCase(repo, cache, fakes.NewUoW(), cfg)
		err := engine.Decrease(ctx, productID, 1)
		assert.ErrorIs(t, err, usecase.ErrStockConflict)

		cached, _ := cache.Value(stockKey(productID))
		assert.Equal(t, int64(10), cached, "fast-path decrement must be rolled back")
	})
}

func TestStockRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("restores durable stock and increments cache", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		productID := store.AddProduct("milk", 250, 3)
		require.NoError(t, cache.Set(ctx, stockKey(productID), 3, 0))
		engine := newStockEngine(store, cache)

		require.NoError(t, engine.Restore(ctx, productID, 2))

		assert.Equal(t, int64(5), store.StockQuantity(productID))
		cached, _ := cache.Value(stockKey(productID))
		assert.Equal(t, int64(5), cached)
	})

	t.Run("missing cache key is repopulated from durable value", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		productID := store.AddProduct("milk", 250, 3)
		engine := newStockEngine(store, cache)

		require.NoError(t, engine.Restore(ctx, productID, 2))

		cached, ok := cache.Value(stockKey(productID))
		require.True(t, ok)
		assert.Equal(t, int64(5), cached)
	})

	t.Run("unknown product", func(t *testing.T) {
		store := fakes.NewStore()
		engine := newStockEngine(store, fakes.NewCache())
		assert.ErrorIs(t, engine.Restore(ctx, uuid.New(), 1), usecase.ErrStockNotFound)
	})
}

func TestStockSyncToCache(t *testing.T) {
	ctx := context.Background()

	t.Run("single product", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		productID := store.AddProduct("milk", 250, 42)
		engine := newStockEngine(store, cache)

		quantity, err := engine.SyncToCache(ctx, productID)
		require.NoError(t, err)
		assert.Equal(t, int64(42), quantity)

		cached, _ := cache.Value(stockKey(productID))
		assert.Equal(t, int64(42), cached)
	})

	t.Run("bulk sync with empty ids covers every row", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		a := store.AddProduct("a", 100, 1)
		b := store.AddProduct("b", 100, 2)
		engine := newStockEngine(store, cache)

		count, err := engine.BulkSyncToCache(ctx, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, count)

		va, _ := cache.Value(stockKey(a))
		vb, _ := cache.Value(stockKey(b))
		assert.Equal(t, int64(1), va)
		assert.Equal(t, int64(2), vb)
	})
}
