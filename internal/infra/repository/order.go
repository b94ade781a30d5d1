package repository

import (
	"context"
	"database/sql"
	"errors"

	"flashmart/internal/domain/order"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order header and one row per line item in the caller's
// transaction.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order, items []order.Item) error {
	const insertOrder = `
		INSERT INTO orders (id, user_id, status, subtotal_cents, discount_cents, total_cents, coupon_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var couponID uuid.NullUUID
	if o.CouponID != nil {
		couponID = uuid.NullUUID{UUID: *o.CouponID, Valid: true}
	}

	if _, err := tx.Exec(ctx, insertOrder, o.ID, o.UserID, o.Status.String(), o.SubtotalCents, o.DiscountCents, o.TotalCents, couponID); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}

	const insertItem = `
		INSERT INTO order_items (id, order_id, product_id, quantity, price_cents_at_purchase)
		VALUES ($1, $2, $3, $4, $5)`

	for _, item := range items {
		if _, err := tx.Exec(ctx, insertItem, item.ID, item.OrderID, item.ProductID, item.Quantity, item.PriceCentsAtPurchase); err != nil {
			return infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*order.Order, error) {
	const query = `
		SELECT id, user_id, status, subtotal_cents, discount_cents, total_cents,
		       coupon_id, payment_id, created_at, updated_at
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	return scanOrder(tx.QueryRow(ctx, query, id))
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status order.Status) error {
	const query = `
		UPDATE orders
		SET status = $2,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

// SetPaid records the payment reference together with the PAID status.
func (r *OrderRepository) SetPaid(ctx context.Context, tx db.DBTX, id uuid.UUID, paymentID string) error {
	const query = `
		UPDATE orders
		SET status = $2,
		    payment_id = $3,
		    updated_at = now()
		WHERE id = $1`

	tag, err := tx.Exec(ctx, query, id, order.StatusPaid.String(), paymentID)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order paid", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderRepository) ItemsByOrderID(ctx context.Context, dbtx db.DBTX, orderID uuid.UUID) ([]order.Item, error) {
	const query = `
		SELECT id, order_id, product_id, quantity, price_cents_at_purchase
		FROM order_items
		WHERE order_id = $1
		ORDER BY product_id`

	rows, err := dbtx.Query(ctx, query, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []order.Item
	for rows.Next() {
		var item order.Item
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.PriceCentsAtPurchase); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*order.Order, error) {
	var (
		o         order.Order
		status    string
		couponID  uuid.NullUUID
		paymentID sql.NullString
	)
	err := row.Scan(&o.ID, &o.UserID, &status, &o.SubtotalCents, &o.DiscountCents, &o.TotalCents,
		&couponID, &paymentID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}

	o.Status = order.Status(status)
	if couponID.Valid {
		id := couponID.UUID
		o.CouponID = &id
	}
	if paymentID.Valid {
		pid := paymentID.String
		o.PaymentID = &pid
	}
	return &o, nil
}
