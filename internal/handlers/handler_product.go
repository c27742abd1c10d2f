package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, ps portssvc.ProductSvcFacade) {
	h := newProductHandler(ps)

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProductByID)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.softDeleteProduct)
		products.POST("/:id/restore", h.restoreProduct)
		products.DELETE("/:id/permanent", h.permanentlyDeleteProduct)
	}
}

func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToProductResponse(created))
}

func (h *productHandler) listProducts(c *gin.Context) {
	products := h.productService.ListProducts(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListProductsResponse(products))
}

func (h *productHandler) getProductByID(c *gin.Context) {
	productID := c.Param("id")

	p, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(p))
}

func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProduct", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.productService.UpdateProduct(c.Request.Context(), productID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update product", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(updated))
}

func (h *productHandler) softDeleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	if err := h.productService.SoftDeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		logger.Error("Failed to soft-delete product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *productHandler) restoreProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	if err := h.productService.RestoreProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in recycle bin"})
			return
		}
		logger.Error("Failed to restore product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore product"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *productHandler) permanentlyDeleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("id")

	if err := h.productService.PermanentlyDeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found in recycle bin"})
			return
		}
		logger.Error("Failed to permanently delete product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to permanently delete product"})
		return
	}
	c.Status(http.StatusNoContent)
}
