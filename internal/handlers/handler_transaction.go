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

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.addTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransactionByID)
		transactions.PUT("/:id", h.updateTransaction)
		transactions.DELETE("/:id", h.softDeleteTransaction)
		transactions.POST("/:id/restore", h.restoreTransaction)
		transactions.DELETE("/:id/permanent", h.permanentlyDeleteTransaction)
	}
}

func (h *transactionHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.transactionService.AddTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to add transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add transaction"})
		return
	}

	logger.Info("Transaction added", slog.String("transaction_id", created.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(created))
}

func (h *transactionHandler) listTransactions(c *gin.Context) {
	txns := h.transactionService.ListTransactions(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	transactionID := c.Param("id")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(updated))
}

func (h *transactionHandler) softDeleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.transactionService.SoftDeleteTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		logger.Error("Failed to soft-delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	c.Status(http.StatusNoContent)
}

// restoreTransaction brings one transaction back from the recycle bin. It
// fails with 400 when the owning shopkeeper is still deleted.
func (h *transactionHandler) restoreTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.transactionService.RestoreTransaction(c.Request.Context(), transactionID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found in recycle bin"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to restore transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore transaction"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *transactionHandler) permanentlyDeleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	if err := h.transactionService.PermanentlyDeleteTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found in recycle bin"})
			return
		}
		logger.Error("Failed to permanently delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to permanently delete transaction"})
		return
	}
	c.Status(http.StatusNoContent)
}
