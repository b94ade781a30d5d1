package api

import (
	"errors"
	"net/http"

	reqdto "flashmart/internal/handler/dto/request"
	resdto "flashmart/internal/handler/dto/response"
	"flashmart/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StockHandler exposes the cache reconciliation operations. Admin only.
type StockHandler struct {
	stockCommands usecase.StockCommands
}

func NewStockHandler(stockCommands usecase.StockCommands) *StockHandler {
	return &StockHandler{stockCommands: stockCommands}
}

// @Summary Sync stock cache
// @Description Rewrite the cached counter of one product from the durable store (admin only)
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param productId path string true "Product ID"
// @Success 200 {object} resdto.StockSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /stock/{productId}/sync [post]
func (h *StockHandler) Sync(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	quantity, err := h.stockCommands.SyncToCache(c.Request.Context(), productID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrStockNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Stock not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.StockSyncResponse{
		ProductID: productID,
		Quantity:  quantity,
	})
}

// @Summary Bulk sync stock cache
// @Description Rewrite cached counters for the given products, or all products when none given (admin only)
// @Tags stock
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkSyncStockRequest true "Product IDs, empty for all"
// @Success 200 {object} resdto.BulkStockSyncResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /stock/sync [post]
func (h *StockHandler) BulkSync(c *gin.Context) {
	var req reqdto.BulkSyncStockRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	synced, err := h.stockCommands.BulkSyncToCache(c.Request.Context(), req.ProductIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.BulkStockSyncResponse{Synced: synced})
}
