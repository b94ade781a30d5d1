package usecase

import "flashmart/internal/pkg/errs"

// Business rejections: expected outcomes, never retried by the engines.
var (
	ErrInvalidQuantity         = errs.New("quantity must be positive")
	ErrInsufficientStock       = errs.New("insufficient stock")
	ErrStockNotFound           = errs.New("stock record not found")
	ErrProductNotFound         = errs.New("product not found")
	ErrSlotNotFound            = errs.New("delivery slot not found")
	ErrSlotFull                = errs.New("delivery slot is full")
	ErrSlotExpired             = errs.New("delivery slot has expired")
	ErrSlotBlocked             = errs.New("delivery slot is blocked")
	ErrCouponNotFound          = errs.New("coupon not found")
	ErrCouponExpired           = errs.New("coupon expired or not active")
	ErrCouponQuotaExceeded     = errs.New("coupon quota exceeded")
	ErrCouponAlreadyUsed       = errs.New("coupon already used by user")
	ErrMinimumPurchaseNotMet   = errs.New("minimum purchase amount not met")
	ErrEmptyOrder              = errs.New("order must have at least one item")
	ErrOrderNotFound           = errs.New("order not found")
	ErrInvalidStatusTransition = errs.New("invalid order status transition")
	ErrRateLimitExceeded       = errs.New("order rate limit exceeded")
)

// Transient conflicts: retried internally up to a bound, then surfaced as a
// "try again" error.
var ErrStockConflict = errs.New("stock update conflict")
