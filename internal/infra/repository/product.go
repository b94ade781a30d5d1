package repository

import (
	"context"
	"errors"

	"flashmart/internal/domain/product"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

// FindActiveByID returns only purchasable products; inactive products are
// invisible to ordering.
func (r *ProductRepository) FindActiveByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*product.Product, error) {
	const query = `
		SELECT id, name, price_cents, is_active, created_at, updated_at
		FROM products
		WHERE id = $1 AND is_active = true`

	var p product.Product
	err := dbtx.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.PriceCents, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return &p, nil
}

// CreateWithStock inserts a product together with its stock row so the
// counter always exists before the first decrement.
func (r *ProductRepository) CreateWithStock(ctx context.Context, tx db.DBTX, p *product.Product, initialQuantity int64) error {
	const insertProduct = `
		INSERT INTO products (id, name, price_cents, is_active)
		VALUES ($1, $2, $3, $4)`

	if _, err := tx.Exec(ctx, insertProduct, p.ID, p.Name, p.PriceCents, p.IsActive); err != nil {
		return infra.WrapRepoErr("failed to create product", err)
	}

	const insertStock = `
		INSERT INTO stocks (product_id, quantity, version)
		VALUES ($1, $2, 0)`

	if _, err := tx.Exec(ctx, insertStock, p.ID, initialQuantity); err != nil {
		return infra.WrapRepoErr("failed to create stock", err)
	}
	return nil
}
