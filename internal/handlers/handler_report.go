package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard aggregates and exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes registers routes related to reporting.
func registerReportingRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: rs}

	reports := rg.Group("/reports")
	{
		reports.GET("/shopkeeper-summary", h.shopkeeperSummary)
		reports.GET("/daily-sales", h.dailySales)
		reports.GET("/transactions.csv", h.exportTransactionsCSV)
	}
}

func (h *reportingHandler) shopkeeperSummary(c *gin.Context) {
	rows, err := h.reportingService.ShopkeeperSummary(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to build shopkeeper summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build shopkeeper summary"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": rows})
}

// dailySales aggregates bills per day over [from, to). Defaults to the last
// 30 days when no bounds are given.
func (h *reportingHandler) dailySales(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	to := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	from := to.AddDate(0, 0, -30)
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = t
	}

	rows, err := h.reportingService.DailySales(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to build daily sales report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build daily sales report"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dailySales": rows})
}

func (h *reportingHandler) exportTransactionsCSV(c *gin.Context) {
	data, err := h.reportingService.ExportTransactionsCSV(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to export transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export transactions"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
