package repository

import (
	"context"
	"errors"
	"time"

	"flashmart/internal/domain/coupon"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) FindByCode(ctx context.Context, dbtx db.DBTX, code string) (*coupon.Coupon, error) {
	const query = `
		SELECT id, code, discount_type, discount_value, min_purchase_cents,
		       valid_from, valid_until, total_limit, used_count, is_active,
		       created_at, updated_at
		FROM coupons
		WHERE code = $1`

	var (
		id                    uuid.UUID
		rawCode, discountType string
		discountValue         int64
		minPurchaseCents      int64
		validFrom, validUntil time.Time
		totalLimit, usedCount int64
		isActive              bool
		createdAt, updatedAt  time.Time
	)
	err := dbtx.QueryRow(ctx, query, code).Scan(
		&id, &rawCode, &discountType, &discountValue, &minPurchaseCents,
		&validFrom, &validUntil, &totalLimit, &usedCount, &isActive,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}

	discount, err := coupon.NewDiscount(coupon.DiscountType(discountType), discountValue)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert coupon row", err)
	}

	entity := coupon.ReconstructCoupon(
		id, coupon.Code(rawCode), discount, minPurchaseCents,
		validFrom, validUntil, totalLimit, usedCount, isActive,
		createdAt, updatedAt,
	)
	return entity, nil
}

// IncrementUsedCount consumes one unit of quota. The guard keeps used_count
// at or below total_limit even under concurrent applies; zero rows affected
// means the ceiling was hit by another transaction.
func (r *CouponRepository) IncrementUsedCount(ctx context.Context, tx db.DBTX, couponID uuid.UUID) (bool, error) {
	const query = `
		UPDATE coupons
		SET used_count = used_count + 1,
		    updated_at = now()
		WHERE id = $1
		  AND (total_limit = 0 OR used_count < total_limit)`

	tag, err := tx.Exec(ctx, query, couponID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon used count", err)
	}
	return tag.RowsAffected() == 1, nil
}

// HasUsage reports whether the user already redeemed the coupon.
func (r *CouponRepository) HasUsage(ctx context.Context, dbtx db.DBTX, userID, couponID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM user_coupons
			WHERE user_id = $1 AND coupon_id = $2 AND used_at IS NOT NULL
		)`

	var used bool
	if err := dbtx.QueryRow(ctx, query, userID, couponID).Scan(&used); err != nil {
		return false, infra.WrapRepoErr("failed to check coupon usage", err)
	}
	return used, nil
}

// MarkUsed records the at-most-once-per-user marker. An existing unused row
// (a pre-granted coupon) is claimed; a row with used_at already set leaves
// zero rows affected, which lets a concurrent second redemption abort at
// commit time instead of slipping through the validate/apply gap.
func (r *CouponRepository) MarkUsed(ctx context.Context, tx db.DBTX, userID, couponID uuid.UUID, usedAt time.Time) (bool, error) {
	const query = `
		INSERT INTO user_coupons (user_id, coupon_id, used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, coupon_id) DO UPDATE SET used_at = EXCLUDED.used_at
		WHERE user_coupons.used_at IS NULL`

	tag, err := tx.Exec(ctx, query, userID, couponID, usedAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark coupon usage", err)
	}
	return tag.RowsAffected() == 1, nil
}
