package response

import (
	"time"

	"flashmart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type OrderItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int64     `json:"quantity"`
	PriceCents  int64     `json:"priceCents"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	UserID        uuid.UUID           `json:"userId"`
	Status        string              `json:"status"`
	SubtotalCents int64               `json:"subtotalCents"`
	DiscountCents int64               `json:"discountCents"`
	TotalCents    int64               `json:"totalCents"`
	CouponCode    *string             `json:"couponCode,omitempty"`
	PaymentID     *string             `json:"paymentId,omitempty"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID         uuid.UUID `json:"id"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	ItemCount  int64     `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromOrderView(rm *queries.OrderView) (*OrderResponse, error) {
	var resp OrderResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromOrderListItem(rm *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:         rm.ID,
		Status:     rm.Status,
		TotalCents: rm.TotalCents,
		ItemCount:  rm.ItemCount,
		CreatedAt:  rm.CreatedAt,
	}
}
