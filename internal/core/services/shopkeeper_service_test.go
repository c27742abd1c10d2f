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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ShopkeeperRepository ---
type MockShopkeeperRepository struct {
	mock.Mock
}

var _ portsrepo.ShopkeeperRepositoryFacade = (*MockShopkeeperRepository)(nil)

func (m *MockShopkeeperRepository) FindShopkeeperByID(ctx context.Context, shopkeeperID string) (*domain.Shopkeeper, error) {
	args := m.Called(ctx, shopkeeperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shopkeeper), args.Error(1)
}

func (m *MockShopkeeperRepository) FindShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shopkeeper), args.Error(1)
}

func (m *MockShopkeeperRepository) FindDeletedShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shopkeeper), args.Error(1)
}

func (m *MockShopkeeperRepository) SaveShopkeeper(ctx context.Context, shopkeeper domain.Shopkeeper) error {
	args := m.Called(ctx, shopkeeper)
	return args.Error(0)
}

func (m *MockShopkeeperRepository) UpdateShopkeeper(ctx context.Context, shopkeeper domain.Shopkeeper) error {
	args := m.Called(ctx, shopkeeper)
	return args.Error(0)
}

func (m *MockShopkeeperRepository) MarkShopkeeperDeleted(ctx context.Context, shopkeeperID string, deletedAt time.Time) ([]string, error) {
	args := m.Called(ctx, shopkeeperID, deletedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockShopkeeperRepository) UnmarkShopkeeperDeleted(ctx context.Context, shopkeeperID string) ([]string, error) {
	args := m.Called(ctx, shopkeeperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockShopkeeperRepository) DeleteShopkeeper(ctx context.Context, shopkeeperID string) error {
	args := m.Called(ctx, shopkeeperID)
	return args.Error(0)
}

func (m *MockShopkeeperRepository) CountTransactionsForShopkeeper(ctx context.Context, shopkeeperID string) (int64, error) {
	args := m.Called(ctx, shopkeeperID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Suite ---

type ShopkeeperServiceTestSuite struct {
	suite.Suite
	mockRepo *MockShopkeeperRepository
	service  *shopkeeperService
	skStore  *entityStore[domain.Shopkeeper]
	txnStore *entityStore[domain.Transaction]

	shopkeeper domain.Shopkeeper
	txnA       domain.Transaction
	txnB       domain.Transaction
	kicked     int
}

func (s *ShopkeeperServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockShopkeeperRepository)
	s.skStore = newShopkeeperStore()
	s.txnStore = newTransactionStore()
	s.service = newShopkeeperService(s.mockRepo, s.skStore, s.txnStore, slog.Default())
	s.kicked = 0
	s.service.setDeletionNotifier(func() { s.kicked++ })

	now := time.Now().UTC()
	s.shopkeeper = domain.Shopkeeper{
		ShopkeeperID: uuid.NewString(),
		Name:         "Ravi",
		CreatedAt:    now,
	}
	s.txnA = domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  s.shopkeeper.ShopkeeperID,
		Date:          now,
		GoodsGiven:    decimal.NewFromInt(500),
		CreatedAt:     now,
	}
	s.txnB = domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  s.shopkeeper.ShopkeeperID,
		Date:          now,
		MoneyReceived: decimal.NewFromInt(200),
		CreatedAt:     now,
	}

	s.skStore.Replace([]domain.Shopkeeper{s.shopkeeper}, nil)
	s.txnStore.Replace([]domain.Transaction{s.txnA, s.txnB}, nil)
}

func (s *ShopkeeperServiceTestSuite) TestSoftDeleteCascadesToTransactions() {
	ctx := context.Background()
	cascaded := []string{s.txnA.TransactionID, s.txnB.TransactionID}
	s.mockRepo.On("MarkShopkeeperDeleted", ctx, s.shopkeeper.ShopkeeperID, mock.AnythingOfType("time.Time")).
		Return(cascaded, nil).Once()

	err := s.service.SoftDeleteShopkeeper(ctx, s.shopkeeper.ShopkeeperID)
	s.Require().NoError(err)

	// Shopkeeper and both transactions left the active sets together
	s.False(s.skStore.HasActive(s.shopkeeper.ShopkeeperID))
	s.True(s.skStore.HasDeleted(s.shopkeeper.ShopkeeperID))
	s.False(s.txnStore.HasActive(s.txnA.TransactionID))
	s.True(s.txnStore.HasDeleted(s.txnA.TransactionID))
	s.True(s.txnStore.HasDeleted(s.txnB.TransactionID))

	// The cascade shares one timestamp
	sk, _ := s.skStore.GetDeleted(s.shopkeeper.ShopkeeperID)
	txn, _ := s.txnStore.GetDeleted(s.txnA.TransactionID)
	s.Require().NotNil(sk.DeletedAt)
	s.Require().NotNil(txn.DeletedAt)
	s.True(sk.DeletedAt.Equal(*txn.DeletedAt))

	s.Equal(1, s.kicked, "soft delete should kick the sweeper")
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ShopkeeperServiceTestSuite) TestSoftDeleteUnknownShopkeeper() {
	err := s.service.SoftDeleteShopkeeper(context.Background(), uuid.NewString())
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "MarkShopkeeperDeleted")
}

func (s *ShopkeeperServiceTestSuite) TestRestoreBringsTransactionsBack() {
	ctx := context.Background()
	cascaded := []string{s.txnA.TransactionID, s.txnB.TransactionID}
	s.mockRepo.On("MarkShopkeeperDeleted", ctx, s.shopkeeper.ShopkeeperID, mock.AnythingOfType("time.Time")).
		Return(cascaded, nil).Once()
	s.mockRepo.On("UnmarkShopkeeperDeleted", ctx, s.shopkeeper.ShopkeeperID).
		Return(cascaded, nil).Once()

	s.Require().NoError(s.service.SoftDeleteShopkeeper(ctx, s.shopkeeper.ShopkeeperID))
	s.Require().NoError(s.service.RestoreShopkeeper(ctx, s.shopkeeper.ShopkeeperID))

	s.True(s.skStore.HasActive(s.shopkeeper.ShopkeeperID))
	s.True(s.txnStore.HasActive(s.txnA.TransactionID))
	s.True(s.txnStore.HasActive(s.txnB.TransactionID))

	sk, _ := s.skStore.GetActive(s.shopkeeper.ShopkeeperID)
	s.Nil(sk.DeletedAt)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ShopkeeperServiceTestSuite) TestRestoreActiveShopkeeperFails() {
	err := s.service.RestoreShopkeeper(context.Background(), s.shopkeeper.ShopkeeperID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "UnmarkShopkeeperDeleted")
}

func (s *ShopkeeperServiceTestSuite) TestPermanentDeleteRemovesShopkeeperAndTransactions() {
	ctx := context.Background()
	cascaded := []string{s.txnA.TransactionID, s.txnB.TransactionID}
	s.mockRepo.On("MarkShopkeeperDeleted", ctx, s.shopkeeper.ShopkeeperID, mock.AnythingOfType("time.Time")).
		Return(cascaded, nil).Once()
	s.mockRepo.On("DeleteShopkeeper", ctx, s.shopkeeper.ShopkeeperID).Return(nil).Once()
	s.mockRepo.On("CountTransactionsForShopkeeper", ctx, s.shopkeeper.ShopkeeperID).Return(int64(0), nil).Once()

	s.Require().NoError(s.service.SoftDeleteShopkeeper(ctx, s.shopkeeper.ShopkeeperID))
	s.Require().NoError(s.service.PermanentlyDeleteShopkeeper(ctx, s.shopkeeper.ShopkeeperID))

	s.False(s.skStore.HasDeleted(s.shopkeeper.ShopkeeperID))
	s.False(s.txnStore.HasDeleted(s.txnA.TransactionID))
	s.False(s.txnStore.HasDeleted(s.txnB.TransactionID))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *ShopkeeperServiceTestSuite) TestPermanentDeleteReportsSurvivingRows() {
	ctx := context.Background()
	s.mockRepo.On("MarkShopkeeperDeleted", ctx, s.shopkeeper.ShopkeeperID, mock.AnythingOfType("time.Time")).
		Return([]string{s.txnA.TransactionID, s.txnB.TransactionID}, nil).Once()
	s.mockRepo.On("DeleteShopkeeper", ctx, s.shopkeeper.ShopkeeperID).Return(nil).Once()
	s.mockRepo.On("CountTransactionsForShopkeeper", ctx, s.shopkeeper.ShopkeeperID).Return(int64(2), nil).Once()

	s.Require().NoError(s.service.SoftDeleteShopkeeper(ctx, s.shopkeeper.ShopkeeperID))
	err := s.service.PermanentlyDeleteShopkeeper(ctx, s.shopkeeper.ShopkeeperID)
	s.ErrorIs(err, apperrors.ErrCascadeInconsistency)
}

func (s *ShopkeeperServiceTestSuite) TestPermanentDeleteRequiresRecycleBin() {
	err := s.service.PermanentlyDeleteShopkeeper(context.Background(), s.shopkeeper.ShopkeeperID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.mockRepo.AssertNotCalled(s.T(), "DeleteShopkeeper")
}

func (s *ShopkeeperServiceTestSuite) TestCreateShopkeeper() {
	ctx := context.Background()
	s.mockRepo.On("SaveShopkeeper", ctx, mock.AnythingOfType("domain.Shopkeeper")).Return(nil).Once()

	created, err := s.service.CreateShopkeeper(ctx, dto.CreateShopkeeperRequest{Name: "  Meena  ", MobileNumber: "9876543210"})
	s.Require().NoError(err)
	s.Equal("Meena", created.Name)
	s.NotEmpty(created.ShopkeeperID)
	s.True(s.skStore.HasActive(created.ShopkeeperID))
}

func (s *ShopkeeperServiceTestSuite) TestCreateShopkeeperRequiresName() {
	_, err := s.service.CreateShopkeeper(context.Background(), dto.CreateShopkeeperRequest{Name: "   "})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveShopkeeper")
}

func (s *ShopkeeperServiceTestSuite) TestUpdateShopkeeper() {
	ctx := context.Background()
	s.mockRepo.On("UpdateShopkeeper", ctx, mock.AnythingOfType("domain.Shopkeeper")).Return(nil).Once()

	newName := "Ravi Kumar"
	updated, err := s.service.UpdateShopkeeper(ctx, s.shopkeeper.ShopkeeperID, dto.UpdateShopkeeperRequest{Name: &newName})
	s.Require().NoError(err)
	s.Equal(newName, updated.Name)

	stored, _ := s.skStore.GetActive(s.shopkeeper.ShopkeeperID)
	s.Equal(newName, stored.Name)
}

func TestShopkeeperServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ShopkeeperServiceTestSuite))
}

func TestShopkeeperReload(t *testing.T) {
	mockRepo := new(MockShopkeeperRepository)
	skStore := newShopkeeperStore()
	txnStore := newTransactionStore()
	svc := newShopkeeperService(mockRepo, skStore, txnStore, slog.Default())

	now := time.Now().UTC()
	active := []domain.Shopkeeper{{ShopkeeperID: "a", Name: "A", CreatedAt: now}}
	deleted := []domain.Shopkeeper{{ShopkeeperID: "b", Name: "B", CreatedAt: now, DeletedAt: &now}}
	mockRepo.On("FindShopkeepers", mock.Anything).Return(active, nil).Once()
	mockRepo.On("FindDeletedShopkeepers", mock.Anything).Return(deleted, nil).Once()

	assert.False(t, skStore.Loaded())
	assert.NoError(t, svc.Reload(context.Background()))
	assert.True(t, skStore.Loaded())
	assert.True(t, skStore.HasActive("a"))
	assert.True(t, skStore.HasDeleted("b"))
}
