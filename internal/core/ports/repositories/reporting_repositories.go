package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// ReportingRepository provides read-only aggregate queries. All aggregates
// see active rows only; the recycle bin is invisible to reports.
type ReportingRepository interface {
	// GetShopkeeperSummary aggregates goods given / money received per
	// active shopkeeper.
	GetShopkeeperSummary(ctx context.Context) ([]domain.ShopkeeperSummaryRow, error)

	// GetDailySales aggregates bills per calendar day over [from, to).
	GetDailySales(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error)
}
