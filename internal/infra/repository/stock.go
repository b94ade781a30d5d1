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

type StockRepository struct{}

func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

func (r *StockRepository) Get(ctx context.Context, dbtx db.DBTX, productID uuid.UUID) (*product.Stock, error) {
	const query = `
		SELECT product_id, quantity, version, updated_at
		FROM stocks
		WHERE product_id = $1`

	return r.scanStock(dbtx.QueryRow(ctx, query, productID))
}

// GetForUpdate acquires the row lock that serializes concurrent mutators of
// the same stock row. Must be called inside a transaction.
func (r *StockRepository) GetForUpdate(ctx context.Context, tx db.DBTX, productID uuid.UUID) (*product.Stock, error) {
	const query = `
		SELECT product_id, quantity, version, updated_at
		FROM stocks
		WHERE product_id = $1
		FOR UPDATE`

	return r.scanStock(tx.QueryRow(ctx, query, productID))
}

// DecrementIfAvailable is both the floor check and the optimistic-lock check
// in one conditional statement. Zero rows affected means either insufficient
// quantity or a version moved underneath us; the caller re-reads to decide.
func (r *StockRepository) DecrementIfAvailable(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity, expectedVersion int64) (bool, error) {
	const query = `
		UPDATE stocks
		SET quantity = quantity - $2,
		    version = version + 1,
		    updated_at = now()
		WHERE product_id = $1
		  AND quantity >= $2
		  AND version = $3`

	tag, err := tx.Exec(ctx, query, productID, quantity, expectedVersion)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement stock", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Restore is the unconditional increment used by cancellations and refunds.
func (r *StockRepository) Restore(ctx context.Context, dbtx db.DBTX, productID uuid.UUID, quantity int64) error {
	const query = `
		UPDATE stocks
		SET quantity = quantity + $2,
		    version = version + 1,
		    updated_at = now()
		WHERE product_id = $1`

	tag, err := dbtx.Exec(ctx, query, productID, quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to restore stock", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("stock not found for restore", nil, infra.KindNotFound)
	}
	return nil
}

// List returns stock rows for the given products, or every row when ids is
// empty. Used by bulk cache reconciliation.
func (r *StockRepository) List(ctx context.Context, dbtx db.DBTX, productIDs []uuid.UUID) ([]product.Stock, error) {
	const listAll = `
		SELECT product_id, quantity, version, updated_at
		FROM stocks`
	const listSome = listAll + `
		WHERE product_id = ANY($1)`

	var (
		rows pgx.Rows
		err  error
	)
	if len(productIDs) == 0 {
		rows, err = dbtx.Query(ctx, listAll)
	} else {
		rows, err = dbtx.Query(ctx, listSome, productIDs)
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stocks", err)
	}
	defer rows.Close()

	var stocks []product.Stock
	for rows.Next() {
		var s product.Stock
		if err := rows.Scan(&s.ProductID, &s.Quantity, &s.Version, &s.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stock row", err)
		}
		stocks = append(stocks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate stock rows", err)
	}
	return stocks, nil
}

func (r *StockRepository) scanStock(row pgx.Row) (*product.Stock, error) {
	var s product.Stock
	if err := row.Scan(&s.ProductID, &s.Quantity, &s.Version, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("stock not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stock", err)
	}
	return &s, nil
}
