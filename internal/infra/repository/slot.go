package repository

import (
	"context"
	"errors"
	"time"

	"flashmart/internal/domain/delivery"
	"flashmart/internal/infra"
	"flashmart/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

const slotColumns = `id, date, starts_at, ends_at, max_capacity, current_count, is_active, created_at, updated_at`

func (r *SlotRepository) Get(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*delivery.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM delivery_slots WHERE id = $1`
	return scanSlot(dbtx.QueryRow(ctx, query, id))
}

// GetForUpdate locks the slot row for the duration of the transaction.
func (r *SlotRepository) GetForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*delivery.Slot, error) {
	query := `SELECT ` + slotColumns + ` FROM delivery_slots WHERE id = $1 FOR UPDATE`
	return scanSlot(tx.QueryRow(ctx, query, id))
}

// IncrementIfBelowCapacity bumps the booking counter only while capacity
// remains. The guard re-evaluates atomically at write time, so zero rows
// affected means the last unit was taken concurrently.
func (r *SlotRepository) IncrementIfBelowCapacity(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE delivery_slots
		SET current_count = current_count + 1,
		    updated_at = now()
		WHERE id = $1
		  AND current_count < max_capacity`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment slot count", err)
	}
	return tag.RowsAffected() == 1, nil
}

// DecrementIfPositive releases one booking; releasing an empty slot is a
// no-op so double-release stays idempotent.
func (r *SlotRepository) DecrementIfPositive(ctx context.Context, tx db.DBTX, id uuid.UUID) (bool, error) {
	const query = `
		UPDATE delivery_slots
		SET current_count = current_count - 1,
		    updated_at = now()
		WHERE id = $1
		  AND current_count > 0`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement slot count", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *SlotRepository) Deactivate(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `
		UPDATE delivery_slots
		SET is_active = false,
		    updated_at = now()
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}

// GetOrCreate keys on (starts_at, ends_at) so repeated provisioning runs are
// safe. Returns whether a new row was inserted.
func (r *SlotRepository) GetOrCreate(ctx context.Context, dbtx db.DBTX, slot delivery.Slot) (*delivery.Slot, bool, error) {
	const insert = `
		INSERT INTO delivery_slots (id, date, starts_at, ends_at, max_capacity, current_count, is_active)
		VALUES ($1, $2, $3, $4, $5, 0, true)
		ON CONFLICT (starts_at, ends_at) DO NOTHING
		RETURNING ` + slotColumns

	created, err := scanSlot(dbtx.QueryRow(ctx, insert, slot.ID, slot.Date, slot.StartsAt, slot.EndsAt, slot.MaxCapacity))
	if err == nil {
		return created, true, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, false, err
	}

	const query = `SELECT ` + slotColumns + ` FROM delivery_slots WHERE starts_at = $1 AND ends_at = $2`
	existing, err := scanSlot(dbtx.QueryRow(ctx, query, slot.StartsAt, slot.EndsAt))
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// HasBlockedException reports whether the calendar blocks provisioning for
// the given date.
func (r *SlotRepository) HasBlockedException(ctx context.Context, dbtx db.DBTX, date time.Time) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM delivery_slot_exceptions
			WHERE date = $1 AND is_blocked = true
		)`

	var blocked bool
	if err := dbtx.QueryRow(ctx, query, date).Scan(&blocked); err != nil {
		return false, infra.WrapRepoErr("failed to check slot exception", err)
	}
	return blocked, nil
}

func scanSlot(row pgx.Row) (*delivery.Slot, error) {
	var s delivery.Slot
	err := row.Scan(&s.ID, &s.Date, &s.StartsAt, &s.EndsAt, &s.MaxCapacity, &s.CurrentCount, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan slot", err)
	}
	return &s, nil
}
