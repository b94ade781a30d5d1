package response

import (
	"flashmart/internal/domain/coupon"
)

type CouponValidationResponse struct {
	Code          string `json:"code"`
	Valid         bool   `json:"valid"`
	DiscountCents int64  `json:"discountCents"`
	DiscountType  string `json:"discountType"`
}

func FromCouponValidation(c *coupon.Coupon, discountCents int64) *CouponValidationResponse {
	return &CouponValidationResponse{
		Code:          c.Code().String(),
		Valid:         true,
		DiscountCents: discountCents,
		DiscountType:  string(c.Discount().Type()),
	}
}
