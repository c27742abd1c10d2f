package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillRepository ---
type MockBillRepository struct {
	mock.Mock
}

var _ portsrepo.BillRepositoryFacade = (*MockBillRepository)(nil)

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill, items []domain.BillItem) (*domain.Bill, error) {
	args := m.Called(ctx, bill, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindBills(ctx context.Context, from, to *time.Time) ([]domain.Bill, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) MarkBillDeleted(ctx context.Context, billID string, deletedAt time.Time) error {
	args := m.Called(ctx, billID, deletedAt)
	return args.Error(0)
}

func (m *MockBillRepository) SaveBillCustomer(ctx context.Context, customer domain.BillCustomer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockBillRepository) FindBillCustomers(ctx context.Context) ([]domain.BillCustomer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillCustomer), args.Error(1)
}

func (m *MockBillRepository) GetBillSettings(ctx context.Context) (*domain.BillSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillSettings), args.Error(1)
}

func (m *MockBillRepository) UpsertBillSettings(ctx context.Context, settings domain.BillSettings) (*domain.BillSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BillSettings), args.Error(1)
}

// --- Suite ---

type BillServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBillRepository
	service  *billService
}

func (s *BillServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockBillRepository)
	s.service = newBillService(s.mockRepo, slog.Default())
}

func (s *BillServiceTestSuite) TestCreateBillComputesTotals() {
	ctx := context.Background()
	s.mockRepo.On("SaveBill", ctx, mock.AnythingOfType("domain.Bill"), mock.AnythingOfType("[]domain.BillItem")).
		Run(func(args mock.Arguments) {
			bill := args.Get(1).(domain.Bill)
			items := args.Get(2).([]domain.BillItem)
			// 2 x 100 + 3 x 50 = 350
			s.True(bill.Subtotal.Equal(decimal.NewFromInt(350)), "subtotal %s", bill.Subtotal)
			// 350 - 25 + 10 = 335
			s.True(bill.TotalAmount.Equal(decimal.NewFromInt(335)), "total %s", bill.TotalAmount)
			s.Require().Len(items, 2)
			s.True(items[0].Amount.Equal(decimal.NewFromInt(200)))
			s.True(items[1].Amount.Equal(decimal.NewFromInt(150)))
		}).
		Return(&domain.Bill{BillID: "b1", BillNumber: 7}, nil).Once()

	created, err := s.service.CreateBill(ctx, dto.CreateBillRequest{
		CustomerName:   "Meena",
		Date:           time.Now().UTC(),
		DiscountAmount: decimal.NewFromInt(25),
		TaxAmount:      decimal.NewFromInt(10),
		Items: []dto.CreateBillItemRequest{
			{ProductName: "Soap", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(100)},
			{ProductName: "Oil", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(50)},
		},
	})
	s.Require().NoError(err)
	s.Equal(int64(7), created.BillNumber)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BillServiceTestSuite) TestCreateBillRequiresItems() {
	_, err := s.service.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Meena",
		Date:         time.Now().UTC(),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveBill")
}

func (s *BillServiceTestSuite) TestCreateBillRejectsZeroQuantity() {
	_, err := s.service.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName: "Meena",
		Date:         time.Now().UTC(),
		Items: []dto.CreateBillItemRequest{
			{ProductName: "Soap", Quantity: decimal.Zero, Rate: decimal.NewFromInt(100)},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BillServiceTestSuite) TestCreateBillRejectsExcessiveDiscount() {
	_, err := s.service.CreateBill(context.Background(), dto.CreateBillRequest{
		CustomerName:   "Meena",
		Date:           time.Now().UTC(),
		DiscountAmount: decimal.NewFromInt(1000),
		Items: []dto.CreateBillItemRequest{
			{ProductName: "Soap", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *BillServiceTestSuite) TestGetSettingsFallsBackToDefault() {
	ctx := context.Background()
	s.mockRepo.On("GetBillSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := s.service.GetSettings(ctx)
	s.Require().NoError(err)
	s.Equal(defaultSettingsID, settings.SettingsID)
	s.Empty(settings.CompanyName)
}

func (s *BillServiceTestSuite) TestUpdateSettingsMergesFields() {
	ctx := context.Background()
	current := &domain.BillSettings{
		SettingsID:  defaultSettingsID,
		CompanyName: "JMD Enterprises",
		CompanyGST:  "GST123",
	}
	s.mockRepo.On("GetBillSettings", ctx).Return(current, nil).Once()
	s.mockRepo.On("UpsertBillSettings", ctx, mock.AnythingOfType("domain.BillSettings")).
		Run(func(args mock.Arguments) {
			merged := args.Get(1).(domain.BillSettings)
			s.Equal("JMD Enterprises", merged.CompanyName, "omitted fields keep their value")
			s.Equal("new footer", merged.FooterMessage)
		}).
		Return(current, nil).Once()

	footer := "new footer"
	_, err := s.service.UpdateSettings(ctx, dto.UpdateBillSettingsRequest{FooterMessage: &footer})
	s.Require().NoError(err)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *BillServiceTestSuite) TestRenderBillPDF() {
	ctx := context.Background()
	bill := &domain.Bill{
		BillID:       "b1",
		BillNumber:   42,
		CustomerName: "Meena",
		Date:         time.Now().UTC(),
		Subtotal:     decimal.NewFromInt(100),
		TotalAmount:  decimal.NewFromInt(100),
		Items: []domain.BillItem{
			{ItemID: "i1", BillID: "b1", ProductName: "Soap", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100), Amount: decimal.NewFromInt(100)},
		},
	}
	s.mockRepo.On("FindBillByID", ctx, "b1").Return(bill, nil).Once()
	s.mockRepo.On("GetBillSettings", ctx).Return(&domain.BillSettings{SettingsID: defaultSettingsID, CompanyName: "JMD Enterprises"}, nil).Once()

	pdfBytes, err := s.service.RenderBillPDF(ctx, "b1")
	s.Require().NoError(err)
	s.NotEmpty(pdfBytes)
	s.True(len(pdfBytes) > 4 && string(pdfBytes[:4]) == "%PDF")
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
