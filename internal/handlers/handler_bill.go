package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to the bill book.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{billService: bs}
}

// registerBillRoutes registers routes related to bills, bill customers and
// the letterhead settings.
func registerBillRoutes(rg *gin.RouterGroup, bs portssvc.BillSvcFacade) {
	h := newBillHandler(bs)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBillByID)
		bills.GET("/:id/pdf", h.downloadBillPDF)
		bills.DELETE("/:id", h.softDeleteBill)
	}

	customers := rg.Group("/bill-customers")
	{
		customers.POST("", h.createCustomer)
		customers.GET("", h.listCustomers)
	}

	settings := rg.Group("/bill-settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bill"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillResponse(created))
}

// listBills returns active bills, optionally bounded by from/to date query
// parameters (YYYY-MM-DD, to is exclusive).
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' date, expected YYYY-MM-DD"})
			return
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' date, expected YYYY-MM-DD"})
			return
		}
		to = &t
	}

	bills, err := h.billService.ListBills(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bills"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}

func (h *billHandler) getBillByID(c *gin.Context) {
	billID := c.Param("id")

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// downloadBillPDF renders the invoice and serves it as an attachment.
func (h *billHandler) downloadBillPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("id")

	bill, err := h.billService.GetBillByID(c.Request.Context(), billID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve bill"})
		return
	}

	pdfBytes, err := h.billService.RenderBillPDF(c.Request.Context(), billID)
	if err != nil {
		logger.Error("Failed to render bill PDF", slog.String("bill_id", billID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render bill PDF"})
		return
	}

	filename := fmt.Sprintf("Invoice_%d.pdf", bill.BillNumber)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *billHandler) softDeleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	billID := c.Param("id")

	if err := h.billService.SoftDeleteBill(c.Request.Context(), billID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		logger.Error("Failed to delete bill", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *billHandler) createCustomer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBillCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCustomer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.billService.CreateCustomer(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create bill customer", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillCustomerResponse(created))
}

func (h *billHandler) listCustomers(c *gin.Context) {
	customers, err := h.billService.ListCustomers(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list bill customers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve customers"})
		return
	}
	resp := make([]dto.BillCustomerResponse, len(customers))
	for i := range customers {
		resp[i] = dto.ToBillCustomerResponse(&customers[i])
	}
	c.JSON(http.StatusOK, gin.H{"customers": resp})
}

func (h *billHandler) getSettings(c *gin.Context) {
	settings, err := h.billService.GetSettings(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to get bill settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBillSettingsResponse(settings))
}

func (h *billHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateBillSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updated, err := h.billService.UpdateSettings(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update bill settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBillSettingsResponse(updated))
}
