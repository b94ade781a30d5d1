package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidDiscountType    = errors.New("unknown discount type")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed_amount"
)

type Discount struct {
	kind  DiscountType
	value int64 // percent (0-100) for percentage, cents for fixed amount
}

func NewFixedDiscount(amountCents int64) (Discount, error) {
	if amountCents < 0 {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, value: amountCents}, nil
}

func NewPercentageDiscount(percent int64) (Discount, error) {
	if percent < 0 || percent > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return Discount{kind: DiscountPercentage, value: percent}, nil
}

func NewDiscount(kind DiscountType, value int64) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType {
	return d.kind
}

func (d Discount) Value() int64 {
	return d.value
}

// AmountFor computes the discount against a subtotal. The result never
// exceeds the subtotal, so an order total cannot go negative.
func (d Discount) AmountFor(subtotalCents int64) int64 {
	var amount int64
	switch d.kind {
	case DiscountPercentage:
		amount = subtotalCents * d.value / 100
	case DiscountFixed:
		amount = d.value
	}
	if amount > subtotalCents {
		return subtotalCents
	}
	return amount
}
