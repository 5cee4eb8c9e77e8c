package handlers

import (
	"net/http"
	"strconv"

	"storefront/internal/api/middleware"
	"storefront/internal/logger"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	store  store.Store
	logger *logger.Logger
}

func NewWishlistHandler(st store.Store, logger *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		store:  st,
		logger: logger,
	}
}

func (h *WishlistHandler) List(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	items, err := h.store.ListWishlist(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("failed to list wishlist for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to fetch wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

type wishlistRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

// Add is idempotent: re-adding a wishlisted product returns the existing row.
func (h *WishlistHandler) Add(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	item, err := h.store.AddWishlistItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		h.logger.Error("failed to add wishlist item for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to update wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (h *WishlistHandler) Toggle(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req wishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, http.StatusBadRequest, err)
		return
	}

	added, err := h.store.ToggleWishlistItem(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		h.logger.Error("failed to toggle wishlist item for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to update wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{"wishlisted": added})
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "wishlist item not found")
		return
	}

	if err := h.store.RemoveWishlistItem(c.Request.Context(), userID, productID); err != nil {
		h.logger.Error("failed to remove wishlist item for user %d: %v", userID, err)
		respondError(c, http.StatusInternalServerError, "failed to update wishlist")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
