package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"flashmart/internal/infra"
	"flashmart/internal/infra/db"
	"flashmart/internal/pkg/config"
	"flashmart/internal/pkg/errs"
	"flashmart/internal/usecase/shared"

	"github.com/google/uuid"
)

// CacheRollback undoes a fast-path cache decrement after the durable path
// failed. May be nil when the cache was unavailable and no decrement was
// taken.
type CacheRollback func(ctx context.Context)

// StockCommands is the decrement-and-reconcile engine for product stock.
//
// Layered concurrency control:
//  1. cache DECRBY as a cheap admission filter (rejects obvious oversell)
//  2. row lock (SELECT ... FOR UPDATE) serializing mutators of one row
//  3. version-guarded conditional update as the final consistency check
//  4. bounded retry with exponential backoff on version conflict
type StockCommands interface {
	Decrease(ctx context.Context, productID uuid.UUID, quantity int64) error
	// DecreaseWithin runs the fast path plus a single durable attempt on the
	// caller's transaction. The returned rollback must be invoked by the
	// caller if the enclosing transaction later aborts.
	DecreaseWithin(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int64) (CacheRollback, error)
	Restore(ctx context.Context, productID uuid.UUID, quantity int64) error
	// RestoreWithin performs only the durable increment on the caller's
	// transaction; the caller reconciles the cache after commit.
	RestoreWithin(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int64) error
	SyncToCache(ctx context.Context, productID uuid.UUID) (int64, error)
	BulkSyncToCache(ctx context.Context, productIDs []uuid.UUID) (int, error)
}

type stockUseCase struct {
	stockRepo StockRepository
	cache     CounterCache
	uow       shared.UnitOfWork
	cfg       config.InventoryConfig
}

func NewStockUseCase(stockRepo StockRepository, cache CounterCache, uow shared.UnitOfWork, cfg config.InventoryConfig) StockCommands {
	return &stockUseCase{
		stockRepo: stockRepo,
		cache:     cache,
		uow:       uow,
		cfg:       cfg,
	}
}

func (u *stockUseCase) Decrease(ctx context.Context, productID uuid.UUID, quantity int64) error {
	if quantity <= 0 {
		return errs.Mark(errs.Newf("decrease stock: quantity %d", quantity), ErrInvalidQuantity)
	}

	rollback, err := u.fastPathDecrement(ctx, productID, quantity)
	if err != nil {
		return err
	}

	if err := u.decreaseDurable(ctx, productID, quantity); err != nil {
		if rollback != nil {
			rollback(ctx)
		}
		return err
	}
	return nil
}

func (u *stockUseCase) DecreaseWithin(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int64) (CacheRollback, error) {
	if quantity <= 0 {
		return nil, errs.Mark(errs.Newf("decrease stock: quantity %d", quantity), ErrInvalidQuantity)
	}

	rollback, err := u.fastPathDecrement(ctx, productID, quantity)
	if err != nil {
		return nil, err
	}

	if err := u.decreaseOnTx(ctx, tx, productID, quantity); err != nil {
		if rollback != nil {
			rollback(ctx)
		}
		return nil, err
	}
	return rollback, nil
}

// fastPathDecrement reserves the quantity on the cache snapshot. A negative
// result is undone immediately and rejected without touching the durable
// store. Cache unavailability degrades to the durable path alone.
func (u *stockUseCase) fastPathDecrement(ctx context.Context, productID uuid.UUID, quantity int64) (CacheRollback, error) {
	key := stockCacheKey(productID)

	if err := u.ensureStockCached(ctx, productID); err != nil {
		slog.Warn("stock cache unavailable, using durable path only",
			"product_id", productID.String(), "error", err.Error())
		return nil, nil
	}

	remaining, err := u.cache.DecrBy(ctx, key, quantity)
	if err != nil {
		slog.Warn("stock cache decrement failed, using durable path only",
			"product_id", productID.String(), "error", err.Error())
		return nil, nil
	}

	if remaining < 0 {
		if _, incErr := u.cache.IncrBy(ctx, key, quantity); incErr != nil {
			slog.Warn("failed to undo stock cache decrement",
				"product_id", productID.String(), "error", incErr.Error())
		}
		return nil, errs.Mark(
			errs.Newf("stock insufficient in cache for product %s: requested %d", productID, quantity),
			ErrInsufficientStock)
	}

	return func(ctx context.Context) {
		if _, err := u.cache.IncrBy(ctx, key, quantity); err != nil {
			slog.Warn("stock cache rollback failed",
				"product_id", productID.String(), "error", err.Error())
		}
	}, nil
}

// decreaseDurable retries the transactional attempt on version conflicts
// only, with exponential backoff. InsufficientStock is a legitimate business
// rejection and is never retried.
func (u *stockUseCase) decreaseDurable(ctx context.Context, productID uuid.UUID, quantity int64) error {
	maxRetries := u.cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
			return u.decreaseOnTx(ctx, tx, productID, quantity)
		})
		if err == nil {
			if attempt > 0 {
				slog.Info("stock decreased after retry",
					"product_id", productID.String(), "attempt", attempt+1)
			}
			return nil
		}
		if !errors.Is(err, ErrStockConflict) {
			return err
		}
		lastErr = err

		if attempt == maxRetries-1 {
			break
		}

		delay := u.cfg.RetryBaseDelay << attempt
		slog.Warn("stock version conflict, retrying",
			"product_id", productID.String(),
			"attempt", attempt+1,
			"max_retries", maxRetries,
			"delay_ms", delay.Milliseconds())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	slog.Error("stock version conflict, max retries exceeded",
		"product_id", productID.String(), "max_retries", maxRetries)
	return lastErr
}

// decreaseOnTx is a single durable attempt: lock the row, read the version,
// then issue the conditional update that is both the floor check and the
// optimistic-lock check.
func (u *stockUseCase) decreaseOnTx(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int64) error {
	stock, err := u.stockRepo.GetForUpdate(ctx, tx, productID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStockNotFound)
		}
		return err
	}

	updated, err := u.stockRepo.DecrementIfAvailable(ctx, tx, productID, quantity, stock.Version)
	if err != nil {
		return err
	}
	if updated {
		return nil
	}

	// Zero rows affected: decide between a genuine floor violation and a
	// concurrent version bump.
	latest, err := u.stockRepo.Get(ctx, tx, productID)
	if err != nil {
		return err
	}
	if !latest.CanFulfill(quantity) {
		return errs.Mark(
			errs.Newf("stock insufficient for product %s: available %d, requested %d",
				productID, latest.Quantity, quantity),
			ErrInsufficientStock)
	}
	return errs.Mark(
		errs.Newf("stock version conflict for product %s: read version %d, current %d",
			productID, stock.Version, latest.Version),
		ErrStockConflict)
}

func (u *stockUseCase) Restore(ctx context.Context, productID uuid.UUID, quantity int64) error {
	if quantity <= 0 {
		return errs.Mark(errs.Newf("restore stock: quantity %d", quantity), ErrInvalidQuantity)
	}

	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		return u.RestoreWithin(ctx, dbtx, productID, quantity)
	})
	if err != nil {
		return err
	}

	u.reconcileCacheAfterRestore(ctx, productID, quantity)
	return nil
}

func (u *stockUseCase) RestoreWithin(ctx context.Context, tx db.DBTX, productID uuid.UUID, quantity int64) error {
	if quantity <= 0 {
		return errs.Mark(errs.Newf("restore stock: quantity %d", quantity), ErrInvalidQuantity)
	}

	if err := u.stockRepo.Restore(ctx, tx, productID, quantity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStockNotFound)
		}
		return err
	}
	return nil
}

// reconcileCacheAfterRestore increments the cached counter when present and
// resynchronizes from the durable value when the key is missing, rather than
// guessing.
func (u *stockUseCase) reconcileCacheAfterRestore(ctx context.Context, productID uuid.UUID, quantity int64) {
	key := stockCacheKey(productID)

	_, exists, err := u.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("stock cache unreachable after restore",
			"product_id", productID.String(), "error", err.Error())
		return
	}
	if exists {
		if _, err := u.cache.IncrBy(ctx, key, quantity); err != nil {
			slog.Warn("stock cache increment failed after restore",
				"product_id", productID.String(), "error", err.Error())
		}
		return
	}
	if _, err := u.SyncToCache(ctx, productID); err != nil {
		slog.Warn("stock cache resync failed after restore",
			"product_id", productID.String(), "error", err.Error())
	}
}

// SyncToCache writes the durable quantity to the cache snapshot with a
// bounded TTL. Used to (re)populate the fast path and by reconciliation.
func (u *stockUseCase) SyncToCache(ctx context.Context, productID uuid.UUID) (int64, error) {
	var quantity int64
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		stock, err := u.stockRepo.Get(ctx, dbtx, productID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrStockNotFound)
			}
			return err
		}
		quantity = stock.Quantity
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := u.cache.Set(ctx, stockCacheKey(productID), quantity, u.cfg.StockCacheTTL); err != nil {
		return 0, err
	}
	return quantity, nil
}

// BulkSyncToCache reconciles cache snapshots for the given products, or for
// every stock row when ids is empty. Returns the number of keys written.
func (u *stockUseCase) BulkSyncToCache(ctx context.Context, productIDs []uuid.UUID) (int, error) {
	var count int
	err := u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		stocks, err := u.stockRepo.List(ctx, dbtx, productIDs)
		if err != nil {
			return err
		}
		for _, s := range stocks {
			if err := u.cache.Set(ctx, stockCacheKey(s.ProductID), s.Quantity, u.cfg.StockCacheTTL); err != nil {
				slog.Warn("stock cache bulk sync failed for key",
					"product_id", s.ProductID.String(), "error", err.Error())
				continue
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("stock cache bulk sync completed", "count", count)
	return count, nil
}

func (u *stockUseCase) ensureStockCached(ctx context.Context, productID uuid.UUID) error {
	_, exists, err := u.cache.Get(ctx, stockCacheKey(productID))
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = u.SyncToCache(ctx, productID)
	return err
}
