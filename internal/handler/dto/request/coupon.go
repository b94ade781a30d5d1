package request

import "strings"

type ValidateCouponRequest struct {
	Code          string `json:"code" binding:"required"`
	SubtotalCents int64  `json:"subtotal_cents" binding:"required,gt=0"`
}

func (r ValidateCouponRequest) NormalizedCode() string {
	return strings.TrimSpace(strings.ToUpper(r.Code))
}
