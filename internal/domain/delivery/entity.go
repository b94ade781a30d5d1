package delivery

import (
	"time"

	"github.com/google/uuid"
)

// Slot is one delivery window with a bounded booking counter.
// Invariant: 0 <= CurrentCount <= MaxCapacity.
type Slot struct {
	ID           uuid.UUID
	Date         time.Time // calendar day of the window, midnight in the slot timezone
	StartsAt     time.Time
	EndsAt       time.Time
	MaxCapacity  int64
	CurrentCount int64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (s Slot) IsFull() bool {
	return s.CurrentCount >= s.MaxCapacity
}

// HasPassed reports whether the window has already begun relative to now.
// Past windows accept no new reservations.
func (s Slot) HasPassed(now time.Time) bool {
	return s.StartsAt.Before(now)
}

func (s Slot) AvailableCount() int64 {
	remaining := s.MaxCapacity - s.CurrentCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// SlotException blocks provisioning for a calendar date (holidays, outages).
type SlotException struct {
	ID        uuid.UUID
	Date      time.Time
	Reason    string
	IsBlocked bool
	CreatedAt time.Time
}

// TimeWindow is a provisioning input: a daily window given as wall-clock
// start/end in the slot timezone.
type TimeWindow struct {
	Start string // "09:00"
	End   string // "12:00"
}
