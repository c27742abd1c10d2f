package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// BillRepositoryFacade covers the bill book: bills with their items,
// invoicing customers and the settings singleton. Bills carry soft delete
// but no cascade and no sweeper.
type BillRepositoryFacade interface {
	// SaveBill inserts the bill header and its items in one database
	// transaction and returns the bill with its assigned serial number.
	SaveBill(ctx context.Context, bill domain.Bill, items []domain.BillItem) (*domain.Bill, error)

	// FindBillByID retrieves an active bill including its items.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// FindBills retrieves active bills, date descending, optionally bounded
	// to [from, to).
	FindBills(ctx context.Context, from, to *time.Time) ([]domain.Bill, error)

	// MarkBillDeleted soft-deletes an active bill.
	MarkBillDeleted(ctx context.Context, billID string, deletedAt time.Time) error

	// SaveBillCustomer persists a new invoicing customer.
	SaveBillCustomer(ctx context.Context, customer domain.BillCustomer) error

	// FindBillCustomers retrieves active customers ordered by name.
	FindBillCustomers(ctx context.Context) ([]domain.BillCustomer, error)

	// GetBillSettings retrieves the settings row, or ErrNotFound when the
	// shop has not configured its letterhead yet.
	GetBillSettings(ctx context.Context) (*domain.BillSettings, error)

	// UpsertBillSettings inserts or updates the settings singleton.
	UpsertBillSettings(ctx context.Context, settings domain.BillSettings) (*domain.BillSettings, error)
}
