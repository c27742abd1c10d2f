package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/SscSPs/shop_management_app/internal/utils/pdf"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// billService implements BillSvcFacade. Bills are read straight from the
// repository; they are append-mostly and not part of the recycle bin view,
// so they carry no in-memory mirror.
type billService struct {
	repo   portsrepo.BillRepositoryFacade
	logger *slog.Logger
}

func newBillService(repo portsrepo.BillRepositoryFacade, logger *slog.Logger) *billService {
	return &billService{
		repo:   repo,
		logger: logger,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// CreateBill computes line amounts and totals server-side and persists the
// bill with its items. The serial bill number comes back from the database.
func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (*domain.Bill, error) {
	customerName := strings.TrimSpace(req.CustomerName)
	if customerName == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("a bill needs at least one item: %w", apperrors.ErrValidation)
	}
	if req.DiscountAmount.IsNegative() || req.TaxAmount.IsNegative() || req.PaidAmount.IsNegative() {
		return nil, fmt.Errorf("amounts cannot be negative: %w", apperrors.ErrValidation)
	}

	billID := uuid.NewString()
	subtotal := decimal.Zero
	items := make([]domain.BillItem, len(req.Items))
	for i, it := range req.Items {
		name := strings.TrimSpace(it.ProductName)
		if name == "" {
			return nil, fmt.Errorf("item %d has no product name: %w", i+1, apperrors.ErrValidation)
		}
		if !it.Quantity.IsPositive() || it.Rate.IsNegative() {
			return nil, fmt.Errorf("item %d has an invalid quantity or rate: %w", i+1, apperrors.ErrValidation)
		}
		amount := it.Quantity.Mul(it.Rate)
		items[i] = domain.BillItem{
			ItemID:      uuid.NewString(),
			BillID:      billID,
			ProductName: name,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
			Amount:      amount,
		}
		subtotal = subtotal.Add(amount)
	}

	total := subtotal.Sub(req.DiscountAmount).Add(req.TaxAmount)
	if total.IsNegative() {
		return nil, fmt.Errorf("discount exceeds the bill subtotal: %w", apperrors.ErrValidation)
	}

	bill := domain.Bill{
		BillID:         billID,
		CustomerID:     req.CustomerID,
		CustomerName:   customerName,
		Date:           req.Date,
		Subtotal:       subtotal,
		DiscountAmount: req.DiscountAmount,
		TaxAmount:      req.TaxAmount,
		TotalAmount:    total,
		PaidAmount:     req.PaidAmount,
		PaymentMethod:  strings.TrimSpace(req.PaymentMethod),
		CreatedAt:      time.Now().UTC(),
	}
	saved, err := s.repo.SaveBill(ctx, bill, items)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "bill created",
		slog.String("bill_id", saved.BillID),
		slog.Int64("bill_number", saved.BillNumber))
	return saved, nil
}

func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.repo.FindBillByID(ctx, billID)
}

func (s *billService) ListBills(ctx context.Context, from, to *time.Time) ([]domain.Bill, error) {
	return s.repo.FindBills(ctx, from, to)
}

func (s *billService) SoftDeleteBill(ctx context.Context, billID string) error {
	return s.repo.MarkBillDeleted(ctx, billID, time.Now().UTC())
}

func (s *billService) CreateCustomer(ctx context.Context, req dto.CreateBillCustomerRequest) (*domain.BillCustomer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}

	c := domain.BillCustomer{
		CustomerID: uuid.NewString(),
		Name:       name,
		Mobile:     strings.TrimSpace(req.Mobile),
		Address:    strings.TrimSpace(req.Address),
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.SaveBillCustomer(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *billService) ListCustomers(ctx context.Context) ([]domain.BillCustomer, error) {
	return s.repo.FindBillCustomers(ctx)
}

// GetSettings returns the letterhead settings, falling back to an empty
// default before the first save.
func (s *billService) GetSettings(ctx context.Context) (*domain.BillSettings, error) {
	settings, err := s.repo.GetBillSettings(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.BillSettings{SettingsID: defaultSettingsID}, nil
		}
		return nil, err
	}
	return settings, nil
}

// defaultSettingsID pins the settings table to a single row.
const defaultSettingsID = "default"

func (s *billService) UpdateSettings(ctx context.Context, req dto.UpdateBillSettingsRequest) (*domain.BillSettings, error) {
	current, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&current.CompanyName, req.CompanyName)
	apply(&current.CompanyAddress, req.CompanyAddress)
	apply(&current.CompanyMobile, req.CompanyMobile)
	apply(&current.CompanyEmail, req.CompanyEmail)
	apply(&current.CompanyGST, req.CompanyGST)
	apply(&current.FooterMessage, req.FooterMessage)

	if strings.TrimSpace(current.CompanyName) == "" {
		return nil, fmt.Errorf("company name is required: %w", apperrors.ErrValidation)
	}
	return s.repo.UpsertBillSettings(ctx, *current)
}

// RenderBillPDF renders the printable invoice for a bill.
func (s *billService) RenderBillPDF(ctx context.Context, billID string) ([]byte, error) {
	bill, err := s.repo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	return pdf.RenderInvoice(*bill, *settings)
}
