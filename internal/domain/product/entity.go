package product

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Stock is the durable ground-truth counter for a product. Quantity never
// goes below zero; Version strictly increases with every successful mutation.
type Stock struct {
	ProductID uuid.UUID
	Quantity  int64
	Version   int64
	UpdatedAt time.Time
}

func (s Stock) CanFulfill(requested int64) bool {
	return s.Quantity >= requested
}
