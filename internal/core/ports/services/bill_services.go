package services

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// BillSvcFacade is the bill book: invoice creation with serial numbering,
// customers, letterhead settings and PDF rendering. Bills soft-delete but
// never cascade and are not swept.
type BillSvcFacade interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error)
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, from, to *time.Time) ([]domain.Bill, error)
	SoftDeleteBill(ctx context.Context, billID string) error

	CreateCustomer(ctx context.Context, req dto.CreateBillCustomerRequest) (*domain.BillCustomer, error)
	ListCustomers(ctx context.Context) ([]domain.BillCustomer, error)

	GetSettings(ctx context.Context) (*domain.BillSettings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateBillSettingsRequest) (*domain.BillSettings, error)

	// RenderBillPDF renders the invoice for download.
	RenderBillPDF(ctx context.Context, billID string) ([]byte, error)
}
