package request

type CreateProductRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	PriceCents   int64  `json:"price_cents" binding:"required,gt=0"`
	InitialStock int64  `json:"initial_stock" binding:"gte=0"`
}
