package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
)

// reportingService implements ReportingSvcFacade. Aggregates come from SQL;
// the CSV export reads the mirrors so it sees the same ordering the list
// endpoints serve.
type reportingService struct {
	repo     portsrepo.ReportingRepository
	txnStore *entityStore[domain.Transaction]
	skStore  *entityStore[domain.Shopkeeper]
}

func newReportingService(
	repo portsrepo.ReportingRepository,
	txnStore *entityStore[domain.Transaction],
	skStore *entityStore[domain.Shopkeeper],
) *reportingService {
	return &reportingService{
		repo:     repo,
		txnStore: txnStore,
		skStore:  skStore,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) ShopkeeperSummary(ctx context.Context) ([]domain.ShopkeeperSummaryRow, error) {
	return s.repo.GetShopkeeperSummary(ctx)
}

func (s *reportingService) DailySales(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("daily sales range is empty: %w", apperrors.ErrValidation)
	}
	return s.repo.GetDailySales(ctx, from, to)
}

// ExportTransactionsCSV renders all active transactions, date descending,
// with the owning shopkeeper's name resolved per row.
func (s *reportingService) ExportTransactionsCSV(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"transaction_id", "shopkeeper_id", "shopkeeper_name", "date", "description", "goods_given", "money_received"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, t := range s.txnStore.Active() {
		name := ""
		if sk, ok := s.skStore.GetActive(t.ShopkeeperID); ok {
			name = sk.Name
		}
		record := []string{
			t.TransactionID,
			t.ShopkeeperID,
			name,
			t.Date.Format(time.DateOnly),
			t.Description,
			t.GoodsGiven.String(),
			t.MoneyReceived.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}
