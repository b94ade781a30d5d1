package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponInactive    = errors.New("coupon is not active")
	ErrMinPurchaseNotMet = errors.New("minimum purchase amount not met")
)

type Coupon struct {
	id               uuid.UUID
	code             Code
	discount         Discount
	minPurchaseCents int64
	validFrom        time.Time
	validUntil       time.Time
	totalLimit       int64
	usedCount        int64
	isActive         bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewCoupon(
	id uuid.UUID,
	code string,
	discount Discount,
	minPurchaseCents int64,
	validFrom, validUntil time.Time,
	totalLimit, usedCount int64,
	isActive bool,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:               id,
		code:             couponCode,
		discount:         discount,
		minPurchaseCents: minPurchaseCents,
		validFrom:        validFrom,
		validUntil:       validUntil,
		totalLimit:       totalLimit,
		usedCount:        usedCount,
		isActive:         isActive,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	discount Discount,
	minPurchaseCents int64,
	validFrom, validUntil time.Time,
	totalLimit, usedCount int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:               id,
		code:             code,
		discount:         discount,
		minPurchaseCents: minPurchaseCents,
		validFrom:        validFrom,
		validUntil:       validUntil,
		totalLimit:       totalLimit,
		usedCount:        usedCount,
		isActive:         isActive,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (c *Coupon) ValidateUsage(now time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if now.Before(c.validFrom) {
		return ErrCouponNotYetValid
	}
	if now.After(c.validUntil) {
		return ErrCouponExpired
	}
	return nil
}

// IsQuotaLimited reports whether the coupon carries a hard usage ceiling.
// A zero total limit means unlimited.
func (c *Coupon) IsQuotaLimited() bool {
	return c.totalLimit > 0
}

func (c *Coupon) QuotaExhausted() bool {
	return c.IsQuotaLimited() && c.usedCount >= c.totalLimit
}

func (c *Coupon) RemainingQuota() int64 {
	if !c.IsQuotaLimited() {
		return -1
	}
	remaining := c.totalLimit - c.usedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CalculateDiscount returns the discount amount for the given subtotal,
// clamped so the discount never exceeds the subtotal.
func (c *Coupon) CalculateDiscount(subtotalCents int64) (int64, error) {
	if subtotalCents < c.minPurchaseCents {
		return 0, ErrMinPurchaseNotMet
	}
	return c.discount.AmountFor(subtotalCents), nil
}

func (c *Coupon) ID() uuid.UUID           { return c.id }
func (c *Coupon) Code() Code              { return c.code }
func (c *Coupon) Discount() Discount      { return c.discount }
func (c *Coupon) MinPurchaseCents() int64 { return c.minPurchaseCents }
func (c *Coupon) ValidFrom() time.Time    { return c.validFrom }
func (c *Coupon) ValidUntil() time.Time   { return c.validUntil }
func (c *Coupon) TotalLimit() int64       { return c.totalLimit }
func (c *Coupon) UsedCount() int64        { return c.usedCount }
func (c *Coupon) IsActive() bool          { return c.isActive }
func (c *Coupon) CreatedAt() time.Time    { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time    { return c.updatedAt }
