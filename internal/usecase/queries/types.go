package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Status        string          `json:"status"`
	SubtotalCents int64           `json:"subtotal_cents"`
	DiscountCents int64           `json:"discount_cents"`
	TotalCents    int64           `json:"total_cents"`
	CouponCode    *string         `json:"coupon_code,omitempty"`
	PaymentID     *string         `json:"payment_id,omitempty"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderItemView struct {
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int64     `json:"quantity"`
	PriceCents  int64     `json:"price_cents"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	ItemCount  int64     `json:"item_count"`
	CreatedAt  time.Time `json:"created_at"`
}

type SlotView struct {
	ID             uuid.UUID `json:"id"`
	Date           time.Time `json:"date"`
	StartsAt       time.Time `json:"starts_at"`
	EndsAt         time.Time `json:"ends_at"`
	MaxCapacity    int64     `json:"max_capacity"`
	CurrentCount   int64     `json:"current_count"`
	AvailableCount int64     `json:"available_count"`
	IsActive       bool      `json:"is_active"`
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OrderListItem, error)
}

type SlotQueries interface {
	ListAvailable(ctx context.Context, from, to time.Time) ([]SlotView, error)
}
