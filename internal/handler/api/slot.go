package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "flashmart/internal/handler/dto/request"
	resdto "flashmart/internal/handler/dto/response"
	"flashmart/internal/usecase"
	"flashmart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands usecase.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands usecase.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary List available slots
// @Description List active delivery slots with remaining capacity in a date range
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param from query string true "Range start (RFC3339)"
// @Param to query string true "Range end (RFC3339)"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) ListAvailable(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'from' parameter, expected RFC3339",
		})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid 'to' parameter, expected RFC3339",
		})
		return
	}
	if !to.After(from) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "'to' must be after 'from'",
		})
		return
	}

	views, err := h.slotQueries.ListAvailable(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i := range views {
		response[i] = resdto.FromSlotView(&views[i])
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Reserve slot
// @Description Take one reservation on a delivery slot
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id}/reserve [post]
func (h *SlotHandler) Reserve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	result, err := h.slotCommands.Reserve(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, usecase.ErrSlotBlocked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is not accepting reservations",
			})
		case errors.Is(err, usecase.ErrSlotExpired):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot has already started",
			})
		case errors.Is(err, usecase.ErrSlotFull):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is full",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationResult(result))
}

// @Summary Release slot reservation
// @Description Free one reservation on a delivery slot; releasing an empty slot is a no-op
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id}/release [post]
func (h *SlotHandler) Release(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.slotCommands.Release(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Block slot
// @Description Deactivate a slot immediately so it takes no new reservations (admin only)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.BlockSlotRequest true "Block reason"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id}/block [post]
func (h *SlotHandler) Block(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.BlockSlotRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.slotCommands.EmergencyBlock(c.Request.Context(), id, req.Reason); err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Provision slots
// @Description Create delivery slots for a date range, skipping blocked calendar dates (admin only)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProvisionSlotsRequest true "Provisioning parameters"
// @Success 201 {object} resdto.ProvisionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /slots/provision [post]
func (h *SlotHandler) Provision(c *gin.Context) {
	var req reqdto.ProvisionSlotsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	created, err := h.slotCommands.BatchProvision(c.Request.Context(), req.FromDate, req.Days, req.ToWindows(), req.MaxCapacity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Provisioning failed",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProvisionedSlots(created))
}
