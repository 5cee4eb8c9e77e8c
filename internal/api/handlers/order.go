package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/api/middleware"
	"storefront/internal/logger"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	store  store.Store
	logger *logger.Logger
}

func NewOrderHandler(st store.Store, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		store:  st,
		logger: logger,
	}
}

func (h *OrderHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	orders, err := h.store.ListOrdersByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list orders for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "order not found")
		return
	}

	order, err := h.store.GetOrderForUser(c.Request.Context(), id, userID)
	if err != nil {
		// Another user's order is indistinguishable from a missing one.
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Error("failed to fetch order %d for user %d: %v", id, userID, err)
		respondError(c, http.StatusInternalServerError, "failed to fetch order")
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": order})
}
