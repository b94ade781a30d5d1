package usecase

import (
	"context"
	"log/slog"
	"time"

	"flashmart/internal/domain/delivery"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"
	"flashmart/internal/pkg/clock"
	"flashmart/internal/pkg/config"
	"flashmart/internal/pkg/errs"
	"flashmart/internal/usecase/shared"

	"github.com/google/uuid"
)

// DefaultSlotWindows are the daily delivery windows provisioned when the
// caller gives none.
var DefaultSlotWindows = []delivery.TimeWindow{
	{Start: "09:00", End: "12:00"},
	{Start: "14:00", End: "17:00"},
	{Start: "18:00", End: "21:00"},
}

// ReservationResult reports the slot counter after a successful reservation.
type ReservationResult struct {
	SlotID         uuid.UUID
	NewCount       int64
	AvailableCount int64
}

// SlotCommands is the capacity reservation engine for delivery windows.
// Reservations run under a row lock; the conditional increment with a
// capacity guard is the final arbiter, so the counter never exceeds capacity.
type SlotCommands interface {
	Reserve(ctx context.Context, slotID uuid.UUID) (*ReservationResult, error)
	// ReserveWithin takes one reservation on the caller's transaction.
	ReserveWithin(ctx context.Context, tx db.DBTX, slotID uuid.UUID) (*ReservationResult, error)
	// Release frees one reservation. Releasing an empty slot is a no-op.
	Release(ctx context.Context, slotID uuid.UUID) error
	ReleaseWithin(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error
	// EmergencyBlock deactivates a slot immediately. Existing reservations
	// stay counted; only new reservations are refused.
	EmergencyBlock(ctx context.Context, slotID uuid.UUID, reason string) error
	// BatchProvision creates slots for each day in [from, from+days) and
	// window, skipping dates with a blocked exception and windows that
	// already exist. Returns the slots actually created.
	BatchProvision(ctx context.Context, from time.Time, days int, windows []delivery.TimeWindow, maxCapacity int64) ([]delivery.Slot, error)
}

type slotUseCase struct {
	slotRepo SlotRepository
	uow      shared.UnitOfWork
	clk      clock.Clock
	cfg      config.InventoryConfig
}

func NewSlotUseCase(slotRepo SlotRepository, uow shared.UnitOfWork, clk clock.Clock, cfg config.InventoryConfig) SlotCommands {
	return &slotUseCase{
		slotRepo: slotRepo,
		uow:      uow,
		clk:      clk,
		cfg:      cfg,
	}
}

func (u *slotUseCase) Reserve(ctx context.Context, slotID uuid.UUID) (*ReservationResult, error) {
	var result *ReservationResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		r, err := u.ReserveWithin(ctx, tx, slotID)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *slotUseCase) ReserveWithin(ctx context.Context, tx db.DBTX, slotID uuid.UUID) (*ReservationResult, error) {
	slot, err := u.slotRepo.GetForUpdate(ctx, tx, slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrSlotNotFound)
		}
		return nil, err
	}

	if !slot.IsActive {
		return nil, errs.Mark(
			errs.Newf("slot %s is deactivated", slotID), ErrSlotBlocked)
	}
	if slot.HasPassed(u.clk.Now()) {
		return nil, errs.Mark(
			errs.Newf("slot %s started at %s", slotID, slot.StartsAt.Format(time.RFC3339)),
			ErrSlotExpired)
	}
	if slot.IsFull() {
		return nil, errs.Mark(
			errs.Newf("slot %s at capacity %d", slotID, slot.MaxCapacity), ErrSlotFull)
	}

	ok, err := u.slotRepo.IncrementIfBelowCapacity(ctx, tx, slotID)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Row is locked, so this only happens if the pre-read raced an
		// increment before our lock was granted.
		return nil, errs.Mark(
			errs.Newf("slot %s filled concurrently", slotID), ErrSlotFull)
	}

	updated, err := u.slotRepo.Get(ctx, tx, slotID)
	if err != nil {
		return nil, err
	}
	return &ReservationResult{
		SlotID:         slotID,
		NewCount:       updated.CurrentCount,
		AvailableCount: updated.AvailableCount(),
	}, nil
}

func (u *slotUseCase) Release(ctx context.Context, slotID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		return u.ReleaseWithin(ctx, tx, slotID)
	})
}

func (u *slotUseCase) ReleaseWithin(ctx context.Context, tx db.DBTX, slotID uuid.UUID) error {
	if _, err := u.slotRepo.GetForUpdate(ctx, tx, slotID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrSlotNotFound)
		}
		return err
	}

	released, err := u.slotRepo.DecrementIfPositive(ctx, tx, slotID)
	if err != nil {
		return err
	}
	if !released {
		slog.Warn("release on empty slot ignored", "slot_id", slotID.String())
	}
	return nil
}

func (u *slotUseCase) EmergencyBlock(ctx context.Context, slotID uuid.UUID, reason string) error {
	err := u.uow.Within(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := u.slotRepo.GetForUpdate(ctx, tx, slotID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrSlotNotFound)
			}
			return err
		}
		return u.slotRepo.Deactivate(ctx, tx, slotID)
	})
	if err != nil {
		return err
	}

	slog.Warn("delivery slot blocked", "slot_id", slotID.String(), "reason", reason)
	return nil
}

func (u *slotUseCase) BatchProvision(ctx context.Context, from time.Time, days int, windows []delivery.TimeWindow, maxCapacity int64) ([]delivery.Slot, error) {
	if days <= 0 {
		return nil, errs.Newf("batch provision: days must be positive, got %d", days)
	}
	if maxCapacity <= 0 {
		return nil, errs.Newf("batch provision: capacity must be positive, got %d", maxCapacity)
	}
	if len(windows) == 0 {
		windows = DefaultSlotWindows
	}

	loc, err := time.LoadLocation(u.cfg.SlotTimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "batch provision: invalid slot timezone")
	}

	var created []delivery.Slot
	err = u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		for day := 0; day < days; day++ {
			date := from.In(loc).AddDate(0, 0, day)
			date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

			blocked, err := u.slotRepo.HasBlockedException(ctx, dbtx, date)
			if err != nil {
				return err
			}
			if blocked {
				slog.Info("skipping blocked date", "date", date.Format("2006-01-02"))
				continue
			}

			for _, w := range windows {
				startsAt, endsAt, err := windowBounds(date, w, loc)
				if err != nil {
					return err
				}
				slot, wasCreated, err := u.slotRepo.GetOrCreate(ctx, dbtx, delivery.Slot{
					ID:          uuid.New(),
					Date:        date,
					StartsAt:    startsAt,
					EndsAt:      endsAt,
					MaxCapacity: maxCapacity,
					IsActive:    true,
				})
				if err != nil {
					return err
				}
				if wasCreated {
					created = append(created, *slot)
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("delivery slots provisioned",
		"from", from.Format("2006-01-02"), "days", days, "created", len(created))
	return created, nil
}

func windowBounds(date time.Time, w delivery.TimeWindow, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation("15:04", w.Start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid window start")
	}
	end, err := time.ParseInLocation("15:04", w.End, loc)
	if err != nil {
		return time.Time{}, time.Time{}, errs.Wrap(err, "invalid window end")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errs.Newf("window end %s not after start %s", w.End, w.Start)
	}

	startsAt := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, loc)
	endsAt := time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, loc)
	return startsAt, endsAt, nil
}
