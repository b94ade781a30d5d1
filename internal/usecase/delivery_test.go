//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"flashmart/internal/domain/delivery"
	"flashmart/internal/pkg/clock"
	"flashmart/internal/pkg/config"
	"flashmart/internal/usecase"
	"flashmart/tests/common/fakes"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newSlotEngine(store *fakes.Store, clk clock.Clock) usecase.SlotCommands {
	cfg := config.NewTestConfig().Inventory
	return usecase.NewSlotUseCase(fakes.NewSlotRepo(store), fakes.NewUoW(), clk, cfg)
}

func TestSlotReserve(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("increments the counter and reports availability", func(t *testing.T) {
		store := fakes.NewStore()
		slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
		engine := newSlotEngine(store, clock.NewMockClock(now))

		result, err := engine.Reserve(ctx, slotID)
		require.NoError(t, err)
		assert.Equal(t, slotID, result.SlotID)
		assert.Equal(t, int64(1), result.NewCount)
		assert.Equal(t, int64(9), result.AvailableCount)
		assert.Equal(t, int64(1), store.SlotCount(slotID))
	})

	t.Run("unknown slot", func(t *testing.T) {
		engine := newSlotEngine(fakes.NewStore(), clock.NewMockClock(now))
		_, err := engine.Reserve(ctx, uuid.New())
		assert.ErrorIs(t, err, usecase.ErrSlotNotFound)
	})

	t.Run("full slot is rejected", func(t *testing.T) {
		store := fakes.NewStore()
		slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 1)
		engine := newSlotEngine(store, clock.NewMockClock(now))

		_, err := engine.Reserve(ctx, slotID)
		require.NoError(t, err)
		_, err = engine.Reserve(ctx, slotID)
		assert.ErrorIs(t, err, usecase.ErrSlotFull)
	})

	t.Run("started slot is rejected", func(t *testing.T) {
		store := fakes.NewStore()
		slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
		clk := clock.NewMockClock(now)
		engine := newSlotEngine(store, clk)

		_, err := engine.Reserve(ctx, slotID)
		require.NoError(t, err)

		clk.Advance(2*time.Hour + time.Minute)
		_, err = engine.Reserve(ctx, slotID)
		assert.ErrorIs(t, err, usecase.ErrSlotExpired)
	})

	t.Run("blocked slot is rejected", func(t *testing.T) {
		store := fakes.NewStore()
		slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
		engine := newSlotEngine(store, clock.NewMockClock(now))
		require.NoError(t, engine.EmergencyBlock(ctx, slotID, "courier outage"))

		_, err := engine.Reserve(ctx, slotID)
		assert.ErrorIs(t, err, usecase.ErrSlotBlocked)
	})
}

func TestSlotReserveConcurrent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	store := fakes.NewStore()
	slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
	engine := newSlotEngine(store, clock.NewMockClock(now))

	const claimants = 20
	results := make([]error, claimants)

	var g errgroup.Group
	for i := 0; i < claimants; i++ {
		i := i
		g.Go(func() error {
			_, err := engine.Reserve(ctx, slotID)
			results[i] = err
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var succeeded, rejected int
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, usecase.ErrSlotFull):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 10, rejected)
	assert.Equal(t, int64(10), store.SlotCount(slotID))
}

func TestSlotRelease(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	t.Run("decrements the counter", func(t *testing.T) {
		store := fakes.NewStore()
		slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
		engine := newSlotEngine(store, clock.NewMockClock(now))

		_, err := engine.Reserve(ctx, slotID)
		require.NoError(t, err)
		require.NoError(t, engine.Release(ctx, slotID))
		assert.Equal(t, int64(0), store.SlotCount(slotID))
	})

	t.Run("release on empty slot is idempotent", func(t *testing.T) {
		store := fakes.NewStore()
		slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
		engine := newSlotEngine(store, clock.NewMockClock(now))

		require.NoError(t, engine.Release(ctx, slotID))
		require.NoError(t, engine.Release(ctx, slotID))
		assert.Equal(t, int64(0), store.SlotCount(slotID))
	})

	t.Run("unknown slot", func(t *testing.T) {
		engine := newSlotEngine(fakes.NewStore(), clock.NewMockClock(now))
		assert.ErrorIs(t, engine.Release(ctx, uuid.New()), usecase.ErrSlotNotFound)
	})
}

func TestSlotEmergencyBlock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	store := fakes.NewStore()
	slotID := store.AddSlot(now.Add(2*time.Hour), now.Add(5*time.Hour), 10)
	engine := newSlotEngine(store, clock.NewMockClock(now))

	_, err := engine.Reserve(ctx, slotID)
	require.NoError(t, err)

	require.NoError(t, engine.EmergencyBlock(ctx, slotID, "warehouse flooded"))

	// Existing reservations stay counted, new ones are refused.
	assert.Equal(t, int64(1), store.SlotCount(slotID))
	_, err = engine.Reserve(ctx, slotID)
	assert.ErrorIs(t, err, usecase.ErrSlotBlocked)

	assert.ErrorIs(t, engine.EmergencyBlock(ctx, uuid.New(), "x"), usecase.ErrSlotNotFound)
}

func TestSlotBatchProvision(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("creates default windows for each day", func(t *testing.T) {
		store := fakes.NewStore()
		engine := newSlotEngine(store, clock.NewMockClock(now))

		created, err := engine.BatchProvision(ctx, from, 3, nil, 20)
		require.NoError(t, err)
		assert.Len(t, created, 3*len(usecase.DefaultSlotWindows))

		for _, slot := range created {
			assert.Equal(t, int64(20), slot.MaxCapacity)
			assert.True(t, slot.IsActive)
			assert.True(t, slot.EndsAt.After(slot.StartsAt))
		}
	})

	t.Run("skips dates with a blocked exception", func(t *testing.T) {
		store := fakes.NewStore()
		engine := newSlotEngine(store, clock.NewMockClock(now))

		loc, err := time.LoadLocation(config.NewTestConfig().Inventory.SlotTimeZone)
		require.NoError(t, err)
		blockedDay := from.In(loc).AddDate(0, 0, 1)
		store.Blocked[blockedDay.Format("2006-01-02")] = true

		created, err := engine.BatchProvision(ctx, from, 3, nil, 20)
		require.NoError(t, err)
		assert.Len(t, created, 2*len(usecase.DefaultSlotWindows))
	})

	t.Run("second run creates nothing new", func(t *testing.T) {
		store := fakes.NewStore()
		engine := newSlotEngine(store, clock.NewMockClock(now))

		windows := []delivery.TimeWindow{{Start: "10:00", End: "13:00"}}
		first, err := engine.BatchProvision(ctx, from, 2, windows, 20)
		require.NoError(t, err)
		assert.Len(t, first, 2)

		second, err := engine.BatchProvision(ctx, from, 2, windows, 20)
		require.NoError(t, err)
		assert.Empty(t, second)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		engine := newSlotEngine(fakes.NewStore(), clock.NewMockClock(now))

		_, err := engine.BatchProvision(ctx, from, 0, nil, 20)
		assert.Error(t, err)
		_, err = engine.BatchProvision(ctx, from, 1, nil, 0)
		assert.Error(t, err)
		_, err = engine.BatchProvision(ctx, from, 1,
			[]delivery.TimeWindow{{Start: "12:00", End: "09:00"}}, 20)
		assert.Error(t, err)
	})
}
