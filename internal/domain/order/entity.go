package order

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Status        Status
	SubtotalCents int64
	DiscountCents int64
	TotalCents    int64
	CouponID      *uuid.UUID
	PaymentID     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Item records the purchase-time unit price. Historical orders are never
// repriced from the current catalog.
type Item struct {
	ID                   uuid.UUID
	OrderID              uuid.UUID
	ProductID            uuid.UUID
	Quantity             int64
	PriceCentsAtPurchase int64
}

type LineItemInput struct {
	ProductID uuid.UUID
	Quantity  int64
}
