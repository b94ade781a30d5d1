package response

import (
	"time"

	"flashmart/internal/domain/delivery"
	"flashmart/internal/usecase"
	"flashmart/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID             uuid.UUID `json:"id"`
	Date           time.Time `json:"date"`
	StartsAt       time.Time `json:"startsAt"`
	EndsAt         time.Time `json:"endsAt"`
	MaxCapacity    int64     `json:"maxCapacity"`
	CurrentCount   int64     `json:"currentCount"`
	AvailableCount int64     `json:"availableCount"`
	IsActive       bool      `json:"isActive"`
}

type ReservationResponse struct {
	SlotID         uuid.UUID `json:"slotId"`
	NewCount       int64     `json:"newCount"`
	AvailableCount int64     `json:"availableCount"`
}

type ProvisionResponse struct {
	Created int            `json:"created"`
	Slots   []SlotResponse `json:"slots"`
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:             rm.ID,
		Date:           rm.Date,
		StartsAt:       rm.StartsAt,
		EndsAt:         rm.EndsAt,
		MaxCapacity:    rm.MaxCapacity,
		CurrentCount:   rm.CurrentCount,
		AvailableCount: rm.AvailableCount,
		IsActive:       rm.IsActive,
	}
}

func FromReservationResult(r *usecase.ReservationResult) *ReservationResponse {
	return &ReservationResponse{
		SlotID:         r.SlotID,
		NewCount:       r.NewCount,
		AvailableCount: r.AvailableCount,
	}
}

func FromProvisionedSlots(slots []delivery.Slot) *ProvisionResponse {
	resp := &ProvisionResponse{
		Created: len(slots),
		Slots:   make([]SlotResponse, len(slots)),
	}
	for i, s := range slots {
		resp.Slots[i] = SlotResponse{
			ID:             s.ID,
			Date:           s.Date,
			StartsAt:       s.StartsAt,
			EndsAt:         s.EndsAt,
			MaxCapacity:    s.MaxCapacity,
			CurrentCount:   s.CurrentCount,
			AvailableCount: s.AvailableCount(),
			IsActive:       s.IsActive,
		}
	}
	return resp
}
