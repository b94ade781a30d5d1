package request

import (
	"strings"

	"flashmart/internal/domain/order"

	"github.com/google/uuid"
)

type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int64     `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Items      []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	CouponCode *string            `json:"coupon_code,omitempty"`
}

func (r PlaceOrderRequest) GetCouponCode() string {
	if r.CouponCode == nil {
		return ""
	}
	return strings.TrimSpace(strings.ToUpper(*r.CouponCode))
}

func (r PlaceOrderRequest) ToLineItems() []order.LineItemInput {
	items := make([]order.LineItemInput, len(r.Items))
	for i, item := range r.Items {
		items[i] = order.LineItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}
	return items
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type MarkOrderPaidRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}
