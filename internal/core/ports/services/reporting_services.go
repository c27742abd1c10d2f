package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// ReportingSvcFacade serves the dashboard aggregates and exports.
type ReportingSvcFacade interface {
	ShopkeeperSummary(ctx context.Context) ([]domain.ShopkeeperSummaryRow, error)
	DailySales(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error)

	// ExportTransactionsCSV renders all active transactions as a CSV document.
	ExportTransactionsCSV(ctx context.Context) ([]byte, error)
}
