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

// CartHandler serves the server-side cart of an authenticated user.
// Anonymous carts live entirely client-side and never hit these routes.
type CartHandler struct {
	store  store.Store
	logger *logger.Logger
}

func NewCartHandler(st store.Store, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		store:  st,
		logger: logger,
	}
}

func (h *CartHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	lines, err := h.store.GetCart(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to fetch cart for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to fetch cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": lines})
}

type addCartLineRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gte=1"`
}

// Add merges quantities: at most one line per product.
func (h *CartHandler) Add(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req addCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	if _, err := h.store.GetProduct(c.Request.Context(), req.ProductID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusBadRequest, "product not found")
			return
		}
		h.logger.Error("failed to look up product %d: %v", req.ProductID, err)
		respondError(c, http.StatusInternalServerError, "failed to update cart")
		return
	}

	line, err := h.store.AddCartLine(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		h.logger.Error("failed to add cart line for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to update cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": line})
}

type updateCartLineRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}

func (h *CartHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "cart item not found")
		return
	}

	var req updateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	line, err := h.store.SetCartLineQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "cart item not found")
			return
		}
		h.logger.Error("failed to update cart line for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to update cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": line})
}

func (h *CartHandler) Remove(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "cart item not found")
		return
	}

	if err := h.store.RemoveCartLine(c.Request.Context(), userID, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "cart item not found")
			return
		}
		h.logger.Error("failed to remove cart line for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to update cart")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	if err := h.store.ClearCart(c.Request.Context(), userID); err != nil {
		h.logger.Error("failed to clear cart for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to clear cart")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
