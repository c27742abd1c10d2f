package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_management_app/internal/models"
	"github.com/SscSPs/shop_management_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

// newPgxBillRepository creates a new repository for the bill book.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBillRepository implements the facade
var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, bill_number, COALESCE(customer_id, ''), customer_name, bill_date, subtotal, discount_amount, tax_amount, total_amount, paid_amount, payment_method, created_at, deleted_at`

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.BillNumber,
		&m.CustomerID,
		&m.CustomerName,
		&m.Date,
		&m.Subtotal,
		&m.DiscountAmount,
		&m.TaxAmount,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.DeletedAt,
	)
	return m, err
}

// SaveBill inserts the bill header and all of its items in one database
// transaction. The serial bill number comes back from the insert.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill, items []domain.BillItem) (*domain.Bill, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelBill(bill)
	headerQuery := `
		INSERT INTO bills (bill_id, customer_id, customer_name, bill_date, subtotal, discount_amount, tax_amount, total_amount, paid_amount, payment_method, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING bill_number;
	`
	err = tx.QueryRow(ctx, headerQuery,
		m.BillID,
		m.CustomerID,
		m.CustomerName,
		m.Date,
		m.Subtotal,
		m.DiscountAmount,
		m.TaxAmount,
		m.TotalAmount,
		m.PaidAmount,
		m.PaymentMethod,
		m.CreatedAt,
	).Scan(&bill.BillNumber)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert bill "+m.BillID, err)
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO bill_items (item_id, bill_id, product_name, quantity, rate, amount)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range items {
		batch.Queue(itemQuery, item.ItemID, bill.BillID, item.ProductName, item.Quantity, item.Rate, item.Amount)
	}
	br := tx.SendBatch(ctx, batch)
	for range items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert bill items for "+m.BillID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close bill item batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	bill.Items = items
	return &bill, nil
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE bill_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}

	bill := mapping.ToDomainBill(m)
	items, err := r.findItems(ctx, []string{billID})
	if err != nil {
		return nil, err
	}
	bill.Items = items[billID]
	return &bill, nil
}

func (r *PgxBillRepository) FindBills(ctx context.Context, from, to *time.Time) ([]domain.Bill, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE deleted_at IS NULL
		  AND ($1::timestamptz IS NULL OR bill_date >= $1)
		  AND ($2::timestamptz IS NULL OR bill_date < $2)
		ORDER BY bill_date DESC, bill_number DESC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	bills := []domain.Bill{}
	ids := []string{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		bills = append(bills, mapping.ToDomainBill(m))
		ids = append(ids, m.BillID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", rows.Err())
	}

	if len(ids) == 0 {
		return bills, nil
	}
	itemsByBill, err := r.findItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range bills {
		bills[i].Items = itemsByBill[bills[i].BillID]
	}
	return bills, nil
}

func (r *PgxBillRepository) findItems(ctx context.Context, billIDs []string) (map[string][]domain.BillItem, error) {
	query := `
		SELECT item_id, bill_id, product_name, quantity, rate, amount
		FROM bill_items
		WHERE bill_id = ANY($1)
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, billIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill items: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]domain.BillItem, len(billIDs))
	for rows.Next() {
		var m models.BillItem
		if err := rows.Scan(&m.ItemID, &m.BillID, &m.ProductName, &m.Quantity, &m.Rate, &m.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan bill item row: %w", err)
		}
		result[m.BillID] = append(result[m.BillID], mapping.ToDomainBillItem(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill item rows: %w", rows.Err())
	}
	return result, nil
}

func (r *PgxBillRepository) MarkBillDeleted(ctx context.Context, billID string, deletedAt time.Time) error {
	query := `
		UPDATE bills
		SET deleted_at = $1
		WHERE bill_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, billID)
	if err != nil {
		return fmt.Errorf("failed to mark bill as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBillRepository) SaveBillCustomer(ctx context.Context, customer domain.BillCustomer) error {
	query := `
		INSERT INTO bill_customers (customer_id, name, mobile, address, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5);
	`
	_, err := r.Pool.Exec(ctx, query, customer.CustomerID, customer.Name, customer.Mobile, customer.Address, customer.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("a customer with mobile %s already exists: %w", customer.Mobile, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bill customer: %w", err)
	}
	return nil
}

func (r *PgxBillRepository) FindBillCustomers(ctx context.Context) ([]domain.BillCustomer, error) {
	query := `
		SELECT customer_id, name, COALESCE(mobile, ''), COALESCE(address, ''), created_at, deleted_at
		FROM bill_customers
		WHERE deleted_at IS NULL
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bill customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.BillCustomer{}
	for rows.Next() {
		var m models.BillCustomer
		if err := rows.Scan(&m.CustomerID, &m.Name, &m.Mobile, &m.Address, &m.CreatedAt, &m.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainBillCustomer(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill customer rows: %w", rows.Err())
	}
	return customers, nil
}

func (r *PgxBillRepository) GetBillSettings(ctx context.Context) (*domain.BillSettings, error) {
	query := `
		SELECT settings_id, company_name, COALESCE(company_address, ''), COALESCE(company_mobile, ''), COALESCE(company_email, ''), COALESCE(company_gst, ''), COALESCE(footer_message, '')
		FROM bill_settings
		LIMIT 1;
	`
	var m models.BillSettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.SettingsID,
		&m.CompanyName,
		&m.CompanyAddress,
		&m.CompanyMobile,
		&m.CompanyEmail,
		&m.CompanyGST,
		&m.FooterMessage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bill settings: %w", err)
	}
	d := mapping.ToDomainBillSettings(m)
	return &d, nil
}

func (r *PgxBillRepository) UpsertBillSettings(ctx context.Context, settings domain.BillSettings) (*domain.BillSettings, error) {
	query := `
		INSERT INTO bill_settings (settings_id, company_name, company_address, company_mobile, company_email, company_gst, footer_message)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''))
		ON CONFLICT (settings_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_address = EXCLUDED.company_address,
			company_mobile = EXCLUDED.company_mobile,
			company_email = EXCLUDED.company_email,
			company_gst = EXCLUDED.company_gst,
			footer_message = EXCLUDED.footer_message;
	`
	_, err := r.Pool.Exec(ctx, query,
		settings.SettingsID,
		settings.CompanyName,
		settings.CompanyAddress,
		settings.CompanyMobile,
		settings.CompanyEmail,
		settings.CompanyGST,
		settings.FooterMessage,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert bill settings: %w", err)
	}
	return &settings, nil
}
