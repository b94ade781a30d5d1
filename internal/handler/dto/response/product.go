package response

import (
	"time"

	"flashmart/internal/domain/product"

	"github.com/google/uuid"
)

type ProductResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromProduct(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
	}
}
