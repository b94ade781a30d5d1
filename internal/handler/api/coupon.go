package api

import (
	"errors"
	"net/http"

	reqdto "flashmart/internal/handler/dto/request"
	resdto "flashmart/internal/handler/dto/response"
	"flashmart/internal/handler/middleware"
	"flashmart/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponCommands usecase.CouponCommands
}

func NewCouponHandler(couponCommands usecase.CouponCommands) *CouponHandler {
	return &CouponHandler{couponCommands: couponCommands}
}

// @Summary Validate coupon
// @Description Check a coupon against the current user and a subtotal without consuming quota
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ValidateCouponRequest true "Coupon and subtotal"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/validate [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ValidateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	cp, discount, err := h.couponCommands.Validate(c.Request.Context(), userID, req.NormalizedCode(), req.SubtotalCents)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, usecase.ErrCouponExpired):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Coupon expired or not active",
			})
		case errors.Is(err, usecase.ErrCouponQuotaExceeded):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon quota exceeded",
			})
		case errors.Is(err, usecase.ErrCouponAlreadyUsed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon already used",
			})
		case errors.Is(err, usecase.ErrMinimumPurchaseNotMet):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Minimum purchase amount not met",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponValidation(cp, discount))
}
