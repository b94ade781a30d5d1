package usecase

import (
	"context"
	"log/slog"

	"flashmart/internal/domain/product"
	"flashmart/internal/infra/db"
	"flashmart/internal/pkg/config"
	"flashmart/internal/pkg/errs"
	"flashmart/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductInput struct {
	Name         string
	PriceCents   int64
	InitialStock int64
}

// ProductCommands covers the catalog writes ordering depends on: a product
// only becomes sellable once its stock row exists.
type ProductCommands interface {
	Create(ctx context.Context, input CreateProductInput) (*product.Product, error)
}

type productUseCase struct {
	productRepo ProductRepository
	cache       CounterCache
	uow         shared.UnitOfWork
	cfg         config.InventoryConfig
}

func NewProductUseCase(productRepo ProductRepository, cache CounterCache, uow shared.UnitOfWork, cfg config.InventoryConfig) ProductCommands {
	return &productUseCase{
		productRepo: productRepo,
		cache:       cache,
		uow:         uow,
		cfg:         cfg,
	}
}

// Create inserts the product and its stock row in one transaction and warms
// the stock snapshot so the first decrement takes the fast path.
func (u *productUseCase) Create(ctx context.Context, input CreateProductInput) (*product.Product, error) {
	if input.Name == "" {
		return nil, errs.New("create product: name required")
	}
	if input.PriceCents <= 0 {
		return nil, errs.Newf("create product: price %d", input.PriceCents)
	}
	if input.InitialStock < 0 {
		return nil, errs.Mark(
			errs.Newf("create product: initial stock %d", input.InitialStock),
			ErrInvalidQuantity)
	}

	p := &product.Product{
		ID:         uuid.New(),
		Name:       input.Name,
		PriceCents: input.PriceCents,
		IsActive:   true,
	}

	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.productRepo.CreateWithStock(ctx, tx, p, input.InitialStock)
	})
	if err != nil {
		return nil, err
	}

	if err := u.cache.Set(ctx, stockCacheKey(p.ID), input.InitialStock, u.cfg.StockCacheTTL); err != nil {
		slog.Warn("stock cache warm-up failed for new product",
			"product_id", p.ID.String(), "error", err.Error())
	}

	slog.Info("product created",
		"product_id", p.ID.String(), "name", p.Name, "initial_stock", input.InitialStock)
	return p, nil
}
