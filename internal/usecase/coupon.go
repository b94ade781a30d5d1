package usecase

import (
	"context"
	"log/slog"

	"flashmart/internal/domain/coupon"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"
	"flashmart/internal/pkg/clock"
	"flashmart/internal/pkg/config"
	"flashmart/internal/pkg/errs"
	"flashmart/internal/usecase/shared"

	"github.com/google/uuid"
)

// CouponCommands validates and consumes coupon quota. The cache carries an
// advisory quota snapshot for cheap rejection of exhausted codes; the durable
// conditional increment is the only authority on quota.
type CouponCommands interface {
	// Validate checks code state, quota, window and per-user usage without
	// consuming anything. SubtotalCents is used for the minimum-purchase rule.
	Validate(ctx context.Context, userID uuid.UUID, code string, subtotalCents int64) (*coupon.Coupon, int64, error)
	// ApplyWithin consumes one quota unit and records per-user usage on the
	// caller's transaction. Must only be called with a coupon returned by
	// Validate in the same request.
	ApplyWithin(ctx context.Context, tx db.DBTX, userID uuid.UUID, c *coupon.Coupon) error
	SyncQuotaToCache(ctx context.Context, code string) (int64, error)
}

type couponUseCase struct {
	couponRepo CouponRepository
	cache      CounterCache
	uow        shared.UnitOfWork
	clk        clock.Clock
	cfg        config.InventoryConfig
}

func NewCouponUseCase(couponRepo CouponRepository, cache CounterCache, uow shared.UnitOfWork, clk clock.Clock, cfg config.InventoryConfig) CouponCommands {
	return &couponUseCase{
		couponRepo: couponRepo,
		cache:      cache,
		uow:        uow,
		clk:        clk,
		cfg:        cfg,
	}
}

func (u *couponUseCase) Validate(ctx context.Context, userID uuid.UUID, code string, subtotalCents int64) (*coupon.Coupon, int64, error) {
	var c *coupon.Coupon
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := u.couponRepo.FindByCode(ctx, dbtx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCouponNotFound)
			}
			return err
		}
		c = found
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if err := c.ValidateUsage(u.clk.Now()); err != nil {
		return nil, 0, errs.Mark(err, ErrCouponExpired)
	}

	if c.IsQuotaLimited() {
		if err := u.checkQuota(ctx, c); err != nil {
			return nil, 0, err
		}
	}

	used, err := u.hasUsage(ctx, userID, c.ID())
	if err != nil {
		return nil, 0, err
	}
	if used {
		return nil, 0, errs.Mark(
			errs.Newf("coupon %s already used by user %s", code, userID),
			ErrCouponAlreadyUsed)
	}

	discount, err := c.CalculateDiscount(subtotalCents)
	if err != nil {
		return nil, 0, errs.Mark(err, ErrMinimumPurchaseNotMet)
	}
	return c, discount, nil
}

// checkQuota rejects on the cache snapshot when it already shows exhaustion,
// then always re-checks the durable counters. The snapshot only short-circuits
// rejection; a stale positive value must not admit past the real quota.
func (u *couponUseCase) checkQuota(ctx context.Context, c *coupon.Coupon) error {
	key := couponQuotaCacheKey(c.Code().String())

	remaining, exists, err := u.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("coupon quota cache unreachable, using durable counters",
			"code", c.Code(), "error", err.Error())
		exists = false
	}
	if exists && remaining <= 0 {
		return errs.Mark(
			errs.Newf("coupon %s quota exhausted (cached)", c.Code()),
			ErrCouponQuotaExceeded)
	}

	if c.QuotaExhausted() {
		if setErr := u.cache.Set(ctx, key, 0, u.cfg.CouponQuotaTTL); setErr != nil {
			slog.Warn("coupon quota cache write failed",
				"code", c.Code(), "error", setErr.Error())
		}
		return errs.Mark(
			errs.Newf("coupon %s quota exhausted: limit %d", c.Code(), c.TotalLimit()),
			ErrCouponQuotaExceeded)
	}

	if !exists {
		if setErr := u.cache.Set(ctx, key, c.RemainingQuota(), u.cfg.CouponQuotaTTL); setErr != nil {
			slog.Warn("coupon quota cache write failed",
				"code", c.Code(), "error", setErr.Error())
		}
	}
	return nil
}

func (u *couponUseCase) hasUsage(ctx context.Context, userID, couponID uuid.UUID) (bool, error) {
	var used bool
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		var err error
		used, err = u.couponRepo.HasUsage(ctx, dbtx, userID, couponID)
		return err
	})
	return used, err
}

// ApplyWithin holds two guards on the caller's transaction: a conditional
// quota increment (zero rows means the quota raced to exhaustion) and a
// conditional usage upsert (zero rows means a concurrent request of the same
// user already consumed this code).
func (u *couponUseCase) ApplyWithin(ctx context.Context, tx db.DBTX, userID uuid.UUID, c *coupon.Coupon) error {
	consumed, err := u.couponRepo.IncrementUsedCount(ctx, tx, c.ID())
	if err != nil {
		return err
	}
	if !consumed {
		u.markQuotaExhausted(ctx, c.Code().String())
		return errs.Mark(
			errs.Newf("coupon %s quota exhausted during apply", c.Code()),
			ErrCouponQuotaExceeded)
	}

	u.decrementQuotaCache(ctx, c)

	marked, err := u.couponRepo.MarkUsed(ctx, tx, userID, c.ID(), u.clk.Now())
	if err != nil {
		return err
	}
	if !marked {
		return errs.Mark(
			errs.Newf("coupon %s concurrently used by user %s", c.Code(), userID),
			ErrCouponAlreadyUsed)
	}
	return nil
}

func (u *couponUseCase) markQuotaExhausted(ctx context.Context, code string) {
	if err := u.cache.Set(ctx, couponQuotaCacheKey(code), 0, u.cfg.CouponQuotaTTL); err != nil {
		slog.Warn("coupon quota cache write failed", "code", code, "error", err.Error())
	}
}

func (u *couponUseCase) decrementQuotaCache(ctx context.Context, c *coupon.Coupon) {
	if !c.IsQuotaLimited() {
		return
	}
	key := couponQuotaCacheKey(c.Code().String())

	_, exists, err := u.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("coupon quota cache unreachable", "code", c.Code(), "error", err.Error())
		return
	}
	if exists {
		if _, err := u.cache.DecrBy(ctx, key, 1); err != nil {
			slog.Warn("coupon quota cache decrement failed", "code", c.Code(), "error", err.Error())
		}
		return
	}

	remaining := c.RemainingQuota() - 1
	if remaining < 0 {
		remaining = 0
	}
	if err := u.cache.Set(ctx, key, remaining, u.cfg.CouponQuotaTTL); err != nil {
		slog.Warn("coupon quota cache write failed", "code", c.Code(), "error", err.Error())
	}
}

// SyncQuotaToCache rewrites the quota snapshot from the durable counters.
// Returns the remaining quota, -1 for unlimited codes.
func (u *couponUseCase) SyncQuotaToCache(ctx context.Context, code string) (int64, error) {
	var c *coupon.Coupon
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		found, err := u.couponRepo.FindByCode(ctx, dbtx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCouponNotFound)
			}
			return err
		}
		c = found
		return nil
	})
	if err != nil {
		return 0, err
	}

	if !c.IsQuotaLimited() {
		return -1, nil
	}

	remaining := c.RemainingQuota()
	if err := u.cache.Set(ctx, couponQuotaCacheKey(code), remaining, u.cfg.CouponQuotaTTL); err != nil {
		return 0, err
	}
	return remaining, nil
}
