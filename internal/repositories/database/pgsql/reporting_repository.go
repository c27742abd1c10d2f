package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// GetShopkeeperSummary aggregates goods given and money received per active
// shopkeeper. Deleted shopkeepers and deleted transactions are invisible.
func (r *reportingRepository) GetShopkeeperSummary(ctx context.Context) ([]domain.ShopkeeperSummaryRow, error) {
	query := `
		SELECT
			s.shopkeeper_id,
			s.name,
			COUNT(t.transaction_id) AS txn_count,
			COALESCE(SUM(t.goods_given), 0) AS total_goods_given,
			COALESCE(SUM(t.money_received), 0) AS total_money_received
		FROM shopkeepers s
		LEFT JOIN transactions t
			ON t.shopkeeper_id = s.shopkeeper_id AND t.deleted_at IS NULL
		WHERE s.deleted_at IS NULL
		GROUP BY s.shopkeeper_id, s.name
		ORDER BY s.name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying shopkeeper summary: %w", err)
	}
	defer rows.Close()

	result := []domain.ShopkeeperSummaryRow{}
	for rows.Next() {
		var row domain.ShopkeeperSummaryRow
		if err := rows.Scan(
			&row.ShopkeeperID,
			&row.ShopkeeperName,
			&row.TransactionCount,
			&row.TotalGoodsGiven,
			&row.TotalMoneyReceived,
		); err != nil {
			return nil, fmt.Errorf("error scanning shopkeeper summary row: %w", err)
		}
		row.Outstanding = row.TotalGoodsGiven.Sub(row.TotalMoneyReceived)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shopkeeper summary rows: %w", err)
	}
	return result, nil
}

// GetDailySales aggregates active bills per calendar day over [from, to).
func (r *reportingRepository) GetDailySales(ctx context.Context, from, to time.Time) ([]domain.DailySalesRow, error) {
	query := `
		SELECT
			to_char(bill_date::date, 'YYYY-MM-DD') AS day,
			COUNT(bill_id) AS bill_count,
			COALESCE(SUM(total_amount), 0) AS total_amount,
			COALESCE(SUM(paid_amount), 0) AS paid_amount
		FROM bills
		WHERE deleted_at IS NULL
			AND bill_date >= $1 AND bill_date < $2
		GROUP BY bill_date::date
		ORDER BY bill_date::date;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily sales: %w", err)
	}
	defer rows.Close()

	result := []domain.DailySalesRow{}
	for rows.Next() {
		var row domain.DailySalesRow
		if err := rows.Scan(&row.Day, &row.BillCount, &row.TotalAmount, &row.PaidAmount); err != nil {
			return nil, fmt.Errorf("error scanning daily sales row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily sales rows: %w", err)
	}
	return result, nil
}
