package readstore

import (
	"context"
	"time"

	"flashmart/internal/infra"
	"flashmart/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) *SlotReadStore {
	return &SlotReadStore{pool: pool}
}

// ListAvailable returns active slots with remaining capacity in the window.
func (s *SlotReadStore) ListAvailable(ctx context.Context, from, to time.Time) ([]queries.SlotView, error) {
	const query = `
		SELECT id, date, starts_at, ends_at, max_capacity, current_count, is_active
		FROM delivery_slots
		WHERE is_active = true
		  AND current_count < max_capacity
		  AND starts_at >= $1
		  AND starts_at < $2
		ORDER BY starts_at`

	rows, err := s.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	defer rows.Close()

	var views []queries.SlotView
	for rows.Next() {
		var v queries.SlotView
		if err := rows.Scan(&v.ID, &v.Date, &v.StartsAt, &v.EndsAt, &v.MaxCapacity, &v.CurrentCount, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		v.AvailableCount = v.MaxCapacity - v.CurrentCount
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}
	return views, nil
}
