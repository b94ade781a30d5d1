package readstore

import (
	"context"
	"database/sql"
	"errors"

	"flashmart/internal/infra"
	"flashmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (s *OrderReadStore) GetByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	const orderQuery = `
		SELECT o.id, o.user_id, o.status, o.subtotal_cents, o.discount_cents, o.total_cents,
		       c.code, o.payment_id, o.created_at, o.updated_at
		FROM orders o
		LEFT JOIN coupons c ON c.id = o.coupon_id
		WHERE o.id = $1`

	var (
		view       queries.OrderView
		couponCode sql.NullString
		paymentID  sql.NullString
	)
	err := s.pool.QueryRow(ctx, orderQuery, id).Scan(
		&view.ID, &view.UserID, &view.Status, &view.SubtotalCents, &view.DiscountCents, &view.TotalCents,
		&couponCode, &paymentID, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read order", err)
	}
	if couponCode.Valid {
		code := couponCode.String
		view.CouponCode = &code
	}
	if paymentID.Valid {
		pid := paymentID.String
		view.PaymentID = &pid
	}

	const itemsQuery = `
		SELECT i.product_id, p.name, i.quantity, i.price_cents_at_purchase
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = $1
		ORDER BY i.product_id`

	rows, err := s.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item queries.OrderItemView
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		view.Items = append(view.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order items", err)
	}

	return &view, nil
}

func (s *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]queries.OrderListItem, error) {
	const query = `
		SELECT o.id, o.status, o.total_cents, count(i.id), o.created_at
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.user_id = $1
		GROUP BY o.id
		ORDER BY o.created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var items []queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		if err := rows.Scan(&item.ID, &item.Status, &item.TotalCents, &item.ItemCount, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return items, nil
}
