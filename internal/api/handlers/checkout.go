package handlers

import (
	"errors"
	"net/http"

	"storefront/internal/api/middleware"
	"storefront/internal/checkout"
	"storefront/internal/logger"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkout checkout.Service
	logger   *logger.Logger
}

func NewCheckoutHandler(svc checkout.Service, logger *logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: svc,
		logger:   logger,
	}
}

type checkoutItem struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gte=1"`
}

type checkoutRequest struct {
	CustomerEmail   string         `json:"customerEmail" binding:"required,email"`
	CustomerName    string         `json:"customerName" binding:"required,min=2"`
	ShippingAddress string         `json:"shippingAddress" binding:"required,min=10"`
	Items           []checkoutItem `json:"items" binding:"required,dive"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	items := make([]checkout.LineRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, checkout.LineRequest{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	result, err := h.checkout.Checkout(c.Request.Context(), &checkout.Request{
		UserID:          userID,
		CustomerEmail:   req.CustomerEmail,
		CustomerName:    req.CustomerName,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
	})
	if err != nil {
		var notFound *checkout.ProductNotFoundError
		var unavailable *checkout.ProductUnavailableError
		switch {
		case errors.Is(err, checkout.ErrEmptyOrder):
			respondError(c, http.StatusBadRequest, "order must contain at least one item")
		case errors.As(err, &notFound):
			respondError(c, http.StatusBadRequest, notFound.Error())
		case errors.As(err, &unavailable):
			respondError(c, http.StatusBadRequest, unavailable.Error())
		default:
			h.logger.Error("checkout failed for user %d: %v", userID, err)
			respondError(c, http.StatusInternalServerError, "failed to create order")
		}
		return
	}

	order := result.Order
	c.JSON(http.StatusOK, gin.H{
		"order": gin.H{
			"id":          order.ID,
			"status":      order.Status,
			"totalAmount": order.TotalAmount,
			"createdAt":   order.CreatedAt,
		},
	})
}
