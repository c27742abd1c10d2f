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

// shopkeeperHandler handles HTTP requests related to shopkeepers.
type shopkeeperHandler struct {
	shopkeeperService  portssvc.ShopkeeperSvcFacade
	transactionService portssvc.TransactionSvcFacade
}

// newShopkeeperHandler creates a new shopkeeperHandler.
func newShopkeeperHandler(ss portssvc.ShopkeeperSvcFacade, ts portssvc.TransactionSvcFacade) *shopkeeperHandler {
	return &shopkeeperHandler{
		shopkeeperService:  ss,
		transactionService: ts,
	}
}

// registerShopkeeperRoutes registers routes related to shopkeepers.
func registerShopkeeperRoutes(rg *gin.RouterGroup, ss portssvc.ShopkeeperSvcFacade, ts portssvc.TransactionSvcFacade) {
	h := newShopkeeperHandler(ss, ts)

	shopkeepers := rg.Group("/shopkeepers")
	{
		shopkeepers.POST("", h.createShopkeeper)
		shopkeepers.GET("", h.listShopkeepers)
		shopkeepers.GET("/:id", h.getShopkeeperByID)
		shopkeepers.PUT("/:id", h.updateShopkeeper)
		shopkeepers.DELETE("/:id", h.softDeleteShopkeeper)
		shopkeepers.POST("/:id/restore", h.restoreShopkeeper)
		shopkeepers.DELETE("/:id/permanent", h.permanentlyDeleteShopkeeper)
		shopkeepers.GET("/:id/transactions", h.listShopkeeperTransactions)
	}
}

func (h *shopkeeperHandler) createShopkeeper(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateShopkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateShopkeeper", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.shopkeeperService.CreateShopkeeper(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create shopkeeper", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create shopkeeper"})
		return
	}

	logger.Info("Shopkeeper created", slog.String("shopkeeper_id", created.ShopkeeperID))
	c.JSON(http.StatusCreated, dto.ToShopkeeperResponse(created))
}

func (h *shopkeeperHandler) listShopkeepers(c *gin.Context) {
	shopkeepers := h.shopkeeperService.ListShopkeepers(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListShopkeepersResponse(shopkeepers))
}

func (h *shopkeeperHandler) getShopkeeperByID(c *gin.Context) {
	shopkeeperID := c.Param("id")

	sk, err := h.shopkeeperService.GetShopkeeperByID(c.Request.Context(), shopkeeperID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopkeeper not found"})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get shopkeeper", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shopkeeper"})
		return
	}
	c.JSON(http.StatusOK, dto.ToShopkeeperResponse(sk))
}

func (h *shopkeeperHandler) updateShopkeeper(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopkeeperID := c.Param("id")

	var req dto.UpdateShopkeeperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateShopkeeper", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.shopkeeperService.UpdateShopkeeper(c.Request.Context(), shopkeeperID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopkeeper not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update shopkeeper", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shopkeeper"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToShopkeeperResponse(updated))
}

// softDeleteShopkeeper moves the shopkeeper and its active transactions to
// the recycle bin.
func (h *shopkeeperHandler) softDeleteShopkeeper(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopkeeperID := c.Param("id")

	if err := h.shopkeeperService.SoftDeleteShopkeeper(c.Request.Context(), shopkeeperID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopkeeper not found"})
			return
		}
		logger.Error("Failed to soft-delete shopkeeper", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete shopkeeper"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *shopkeeperHandler) restoreShopkeeper(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopkeeperID := c.Param("id")

	if err := h.shopkeeperService.RestoreShopkeeper(c.Request.Context(), shopkeeperID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopkeeper not found in recycle bin"})
			return
		}
		logger.Error("Failed to restore shopkeeper", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore shopkeeper"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *shopkeeperHandler) permanentlyDeleteShopkeeper(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	shopkeeperID := c.Param("id")

	if err := h.shopkeeperService.PermanentlyDeleteShopkeeper(c.Request.Context(), shopkeeperID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopkeeper not found in recycle bin"})
		case errors.Is(err, apperrors.ErrCascadeInconsistency):
			// The shopkeeper itself is gone; surviving rows need attention.
			logger.Error("Cascade inconsistency after permanent delete", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Shopkeeper deleted but dependent records survived"})
		default:
			logger.Error("Failed to permanently delete shopkeeper", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to permanently delete shopkeeper"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *shopkeeperHandler) listShopkeeperTransactions(c *gin.Context) {
	shopkeeperID := c.Param("id")

	if _, err := h.shopkeeperService.GetShopkeeperByID(c.Request.Context(), shopkeeperID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shopkeeper not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve shopkeeper"})
		return
	}

	txns := h.transactionService.ListTransactionsByShopkeeper(c.Request.Context(), shopkeeperID)
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}
