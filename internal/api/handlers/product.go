package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"storefront/internal/logger"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	store  store.Store
	logger *logger.Logger
}

func NewProductHandler(st store.Store, logger *logger.Logger) *ProductHandler {
	return &ProductHandler{
		store:  st,
		logger: logger,
	}
}

func (h *ProductHandler) List(c *gin.Context) {
	category := c.DefaultQuery("category", "all")

	products, err := h.store.ListProducts(c.Request.Context(), category)
	if err != nil {
		h.logger.Error("failed to list products: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Featured(c *gin.Context) {
	products, err := h.store.FeaturedProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list featured products: %v", err)
		respondError(c, http.StatusInternalServerError, "failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "product not found")
		return
	}

	product, err := h.store.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Error("failed to fetch product %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to fetch product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}
