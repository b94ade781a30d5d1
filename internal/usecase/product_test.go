//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"flashmart/internal/pkg/config"
	"flashmart/internal/usecase"
	"flashmart/tests/common/fakes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCreate(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig().Inventory

	t.Run("creates the product with its stock row and warms the cache", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		engine := usecase.NewProductUseCase(fakes.NewProductRepo(store), cache, fakes.NewUoW(), cfg)

		p, err := engine.Create(ctx, usecase.CreateProductInput{
			Name:         "oat milk",
			PriceCents:   350,
			InitialStock: 25,
		})
		require.NoError(t, err)

		assert.True(t, p.IsActive)
		assert.Equal(t, int64(25), store.StockQuantity(p.ID))
		cached, ok := cache.Value("stock:" + p.ID.String())
		require.True(t, ok)
		assert.Equal(t, int64(25), cached)

		stockEngine := usecase.NewStockUseCase(fakes.NewStockRepo(store), cache, fakes.NewUoW(), cfg)
		require.NoError(t, stockEngine.Decrease(ctx, p.ID, 5))
		assert.Equal(t, int64(20), store.StockQuantity(p.ID))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		store := fakes.NewStore()
		engine := usecase.NewProductUseCase(fakes.NewProductRepo(store), fakes.NewCache(), fakes.NewUoW(), cfg)

		_, err := engine.Create(ctx, usecase.CreateProductInput{PriceCents: 100})
		assert.Error(t, err)
		_, err = engine.Create(ctx, usecase.CreateProductInput{Name: "x", PriceCents: 0})
		assert.Error(t, err)
		_, err = engine.Create(ctx, usecase.CreateProductInput{Name: "x", PriceCents: 100, InitialStock: -1})
		assert.ErrorIs(t, err, usecase.ErrInvalidQuantity)
	})

	t.Run("tolerates cache failure", func(t *testing.T) {
		store := fakes.NewStore()
		cache := fakes.NewCache()
		cache.Fail = assert.AnError
		engine := usecase.NewProductUseCase(fakes.NewProductRepo(store), cache, fakes.NewUoW(), cfg)

		p, err := engine.Create(ctx, usecase.CreateProductInput{
			Name: "oat milk", PriceCents: 350, InitialStock: 5,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), store.StockQuantity(p.ID))
	})
}
