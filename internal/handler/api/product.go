package api

import (
	"net/http"

	reqdto "flashmart/internal/handler/dto/request"
	resdto "flashmart/internal/handler/dto/response"
	"flashmart/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler exposes catalog writes. Admin only.
type ProductHandler struct {
	productCommands usecase.ProductCommands
}

func NewProductHandler(productCommands usecase.ProductCommands) *ProductHandler {
	return &ProductHandler{productCommands: productCommands}
}

// @Summary Create product
// @Description Create a product with its initial stock (admin only)
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	p, err := h.productCommands.Create(c.Request.Context(), usecase.CreateProductInput{
		Name:         req.Name,
		PriceCents:   req.PriceCents,
		InitialStock: req.InitialStock,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, resdto.FromProduct(p))
}
