//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"flashmart/internal/handler/api"
	resdto "flashmart/internal/handler/dto/response"
	"flashmart/internal/handler/middleware"
	"flashmart/internal/usecase"
	"flashmart/internal/usecase/queries"
	"flashmart/tests/common/httptest"
	queriesmock "flashmart/tests/mock/queries"
	usecasemock "flashmart/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *usecasemock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
	userID       uuid.UUID
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = usecasemock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", middleware.RoleCustomer)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.PlaceOrder)
	s.router.GET("/orders", authMiddleware, s.handler.ListOrders)
	s.router.GET("/orders/:id", authMiddleware, s.handler.GetOrder)
	s.router.POST("/orders/:id/cancel", authMiddleware, s.handler.CancelOrder)
	s.router.POST("/orders/:id/payment", authMiddleware, s.handler.MarkPaid)
	s.router.PATCH("/orders/:id/status", authMiddleware, s.handler.UpdateStatus)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) orderView(id uuid.UUID) *queries.OrderView {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &queries.OrderView{
		ID:            id,
		UserID:        s.userID,
		Status:        "PENDING",
		SubtotalCents: 700,
		TotalCents:    700,
		Items: []queries.OrderItemView{
			{ProductID: uuid.New(), ProductName: "oat milk", Quantity: 2, PriceCents: 350},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ================================================================================
// TestPlaceOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestPlaceOrder() {
	url := "/orders"
	reqBody := map[string]any{
		"items": []map[string]any{
			{"product_id": uuid.New().String(), "quantity": 2},
		},
	}

	s.Run("success: returns 201 Created with the order view", func() {
		view := s.orderView(uuid.New())
		s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.userID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("PENDING", response.Status)
		s.Equal(int64(700), response.TotalCents)
		s.Len(response.Items, 1)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		invalid := []map[string]any{
			{},
			{"items": []map[string]any{}},
			{"items": []map[string]any{{"product_id": uuid.New().String(), "quantity": 0}}},
			{"items": []map[string]any{{"quantity": 1}}},
		}
		for _, body := range invalid {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "insufficient stock",
				commandsError:  usecase.ErrInsufficientStock,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Insufficient stock",
			},
			{
				name:           "stock contention after retries",
				commandsError:  usecase.ErrStockConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "try again",
			},
			{
				name:           "rate limited",
				commandsError:  usecase.ErrRateLimitExceeded,
				expectedStatus: http.StatusTooManyRequests,
				expectedMsg:    "Too many order attempts",
			},
			{
				name:           "product not found",
				commandsError:  usecase.ErrProductNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Product not found",
			},
			{
				name:           "coupon not found",
				commandsError:  usecase.ErrCouponNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Coupon not found",
			},
			{
				name:           "coupon expired",
				commandsError:  usecase.ErrCouponExpired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Coupon expired",
			},
			{
				name:           "coupon quota exceeded",
				commandsError:  usecase.ErrCouponQuotaExceeded,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Coupon quota exceeded",
			},
			{
				name:           "coupon already used",
				commandsError:  usecase.ErrCouponAlreadyUsed,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Coupon already used",
			},
			{
				name:           "minimum purchase not met",
				commandsError:  usecase.ErrMinimumPurchaseNotMet,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Minimum purchase",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().PlaceOrder(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestGetOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String()

	s.Run("success: returns 200 OK with OrderResponse", func() {
		view := s.orderView(orderID)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(orderID, response.ID)
		s.Equal(int64(700), response.SubtotalCents)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid order ID")
	})

	s.Run("error: 404 Not Found for missing order", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), orderID).
			Return(nil, usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

// ================================================================================
// TestListOrders
// ================================================================================

func (s *OrderHandlerTestSuite) TestListOrders() {
	url := "/orders"

	s.Run("success: returns the user's orders", func() {
		items := []queries.OrderListItem{
			{ID: uuid.New(), Status: "PENDING", TotalCents: 700, ItemCount: 1},
			{ID: uuid.New(), Status: "PAID", TotalCents: 4000, ItemCount: 2},
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.OrderListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(items[0].ID, response[0].ID)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCancelOrder
// ================================================================================

func (s *OrderHandlerTestSuite) TestCancelOrder() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 Conflict for terminal orders", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID).
			Return(usecase.ErrInvalidStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid status transition")
	})

	s.Run("error: 404 Not Found for missing order", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), orderID).
			Return(usecase.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Order not found")
	})
}

// ================================================================================
// TestMarkPaid
// ================================================================================

func (s *OrderHandlerTestSuite) TestMarkPaid() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/payment"
	reqBody := map[string]any{"payment_id": "pay_abc"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().MarkPaid(gomock.Any(), orderID, "pay_abc").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request without a payment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict when already paid", func() {
		s.mockCommands.EXPECT().MarkPaid(gomock.Any(), orderID, "pay_abc").
			Return(usecase.ErrInvalidStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid status transition")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	orderID := uuid.New()
	url := "/orders/" + orderID.String() + "/status"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "SHIPPED"}, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request without a status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 409 Conflict for an illegal transition", func() {
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), orderID, gomock.Any()).
			Return(usecase.ErrInvalidStatusTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "REFUNDED"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Invalid status transition")
	})
}
