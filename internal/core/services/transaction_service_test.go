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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindDeletedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, shopkeeperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time) error {
	args := m.Called(ctx, transactionID, deletedAt)
	return args.Error(0)
}

func (m *MockTransactionRepository) UnmarkTransactionDeleted(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Suite ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  *transactionService
	skStore  *entityStore[domain.Shopkeeper]
	txnStore *entityStore[domain.Transaction]

	activeShopkeeper  domain.Shopkeeper
	deletedShopkeeper domain.Shopkeeper
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockTransactionRepository)
	s.skStore = newShopkeeperStore()
	s.txnStore = newTransactionStore()
	s.service = newTransactionService(s.mockRepo, s.txnStore, s.skStore, slog.Default())

	now := time.Now().UTC()
	deletedAt := now.Add(-time.Hour)
	s.activeShopkeeper = domain.Shopkeeper{ShopkeeperID: uuid.NewString(), Name: "Ravi", CreatedAt: now}
	s.deletedShopkeeper = domain.Shopkeeper{ShopkeeperID: uuid.NewString(), Name: "Gone", CreatedAt: now, DeletedAt: &deletedAt}

	s.skStore.Replace([]domain.Shopkeeper{s.activeShopkeeper}, []domain.Shopkeeper{s.deletedShopkeeper})
	s.txnStore.Replace(nil, nil)
}

func (s *TransactionServiceTestSuite) TestAddTransaction() {
	ctx := context.Background()
	s.mockRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	created, err := s.service.AddTransaction(ctx, dto.CreateTransactionRequest{
		ShopkeeperID: s.activeShopkeeper.ShopkeeperID,
		Date:         time.Now().UTC(),
		GoodsGiven:   decimal.NewFromInt(500),
	})
	s.Require().NoError(err)
	s.True(s.txnStore.HasActive(created.TransactionID))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestAddTransactionRejectsDeletedShopkeeper() {
	_, err := s.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		ShopkeeperID: s.deletedShopkeeper.ShopkeeperID,
		Date:         time.Now().UTC(),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction")
}

func (s *TransactionServiceTestSuite) TestAddTransactionRejectsNegativeAmounts() {
	_, err := s.service.AddTransaction(context.Background(), dto.CreateTransactionRequest{
		ShopkeeperID: s.activeShopkeeper.ShopkeeperID,
		Date:         time.Now().UTC(),
		GoodsGiven:   decimal.NewFromInt(-1),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "SaveTransaction")
}

func (s *TransactionServiceTestSuite) TestSoftDeleteAndRestoreRoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  s.activeShopkeeper.ShopkeeperID,
		Date:          now,
		CreatedAt:     now,
	}
	s.txnStore.Replace([]domain.Transaction{txn}, nil)

	s.mockRepo.On("MarkTransactionDeleted", ctx, txn.TransactionID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	s.mockRepo.On("UnmarkTransactionDeleted", ctx, txn.TransactionID).Return(nil).Once()

	s.Require().NoError(s.service.SoftDeleteTransaction(ctx, txn.TransactionID))
	s.True(s.txnStore.HasDeleted(txn.TransactionID))

	s.Require().NoError(s.service.RestoreTransaction(ctx, txn.TransactionID))
	s.True(s.txnStore.HasActive(txn.TransactionID))

	restored, _ := s.txnStore.GetActive(txn.TransactionID)
	s.Nil(restored.DeletedAt)
	s.mockRepo.AssertExpectations(s.T())
}

// A cascaded transaction stays in the bin until its shopkeeper comes back.
func (s *TransactionServiceTestSuite) TestRestoreBlockedWhileShopkeeperDeleted() {
	now := time.Now().UTC()
	deletedAt := now.Add(-time.Minute)
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  s.deletedShopkeeper.ShopkeeperID,
		Date:          now,
		CreatedAt:     now,
		DeletedAt:     &deletedAt,
	}
	s.txnStore.Replace(nil, []domain.Transaction{txn})

	err := s.service.RestoreTransaction(context.Background(), txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.True(s.txnStore.HasDeleted(txn.TransactionID))
	s.mockRepo.AssertNotCalled(s.T(), "UnmarkTransactionDeleted")
}

func (s *TransactionServiceTestSuite) TestDoubleRestoreFails() {
	ctx := context.Background()
	now := time.Now().UTC()
	deletedAt := now.Add(-time.Minute)
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  s.activeShopkeeper.ShopkeeperID,
		Date:          now,
		CreatedAt:     now,
		DeletedAt:     &deletedAt,
	}
	s.txnStore.Replace(nil, []domain.Transaction{txn})
	s.mockRepo.On("UnmarkTransactionDeleted", ctx, txn.TransactionID).Return(nil).Once()

	s.Require().NoError(s.service.RestoreTransaction(ctx, txn.TransactionID))
	err := s.service.RestoreTransaction(ctx, txn.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestUpdateImmutableShopkeeperID() {
	ctx := context.Background()
	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  s.activeShopkeeper.ShopkeeperID,
		Date:          now,
		CreatedAt:     now,
	}
	s.txnStore.Replace([]domain.Transaction{txn}, nil)
	s.mockRepo.On("UpdateTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	amount := decimal.NewFromInt(750)
	updated, err := s.service.UpdateTransaction(ctx, txn.TransactionID, dto.UpdateTransactionRequest{GoodsGiven: &amount})
	s.Require().NoError(err)
	s.Equal(s.activeShopkeeper.ShopkeeperID, updated.ShopkeeperID)
	s.True(updated.GoodsGiven.Equal(amount))
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
