package request

import (
	"time"

	"flashmart/internal/domain/delivery"
)

type SlotWindowRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type ProvisionSlotsRequest struct {
	FromDate    time.Time           `json:"from_date" binding:"required"`
	Days        int                 `json:"days" binding:"required,gt=0"`
	MaxCapacity int64               `json:"max_capacity" binding:"required,gt=0"`
	Windows     []SlotWindowRequest `json:"windows,omitempty"` // empty uses the default daily windows
}

func (r ProvisionSlotsRequest) ToWindows() []delivery.TimeWindow {
	windows := make([]delivery.TimeWindow, len(r.Windows))
	for i, w := range r.Windows {
		windows[i] = delivery.TimeWindow{Start: w.Start, End: w.End}
	}
	return windows
}

type BlockSlotRequest struct {
	Reason string `json:"reason" binding:"required"`
}
