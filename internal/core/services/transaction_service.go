package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shop_management_app/internal/apperrors"
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements TransactionSvcFacade. It shares the
// transaction mirror with the shopkeeper service and consults the shopkeeper
// mirror for referential checks.
type transactionService struct {
	repo     portsrepo.TransactionRepositoryFacade
	txnStore *entityStore[domain.Transaction]
	skStore  *entityStore[domain.Shopkeeper]
	logger   *slog.Logger
	notify   func()
}

func newTransactionService(
	repo portsrepo.TransactionRepositoryFacade,
	txnStore *entityStore[domain.Transaction],
	skStore *entityStore[domain.Shopkeeper],
	logger *slog.Logger,
) *transactionService {
	return &transactionService{
		repo:     repo,
		txnStore: txnStore,
		skStore:  skStore,
		logger:   logger,
		notify:   func() {},
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) setDeletionNotifier(notify func()) {
	s.notify = notify
}

// Reload refreshes the transaction mirror from the repository.
func (s *transactionService) Reload(ctx context.Context) error {
	active, err := s.repo.FindTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}
	deleted, err := s.repo.FindDeletedTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load deleted transactions: %w", err)
	}
	s.txnStore.Replace(active, deleted)
	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, ok := s.txnStore.GetActive(transactionID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) []domain.Transaction {
	return s.txnStore.Active()
}

func (s *transactionService) ListTransactionsByShopkeeper(ctx context.Context, shopkeeperID string) []domain.Transaction {
	all := s.txnStore.Active()
	out := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if t.ShopkeeperID == shopkeeperID {
			out = append(out, t)
		}
	}
	return out
}

func validateTxnAmounts(t domain.Transaction) error {
	if t.GoodsGiven.IsNegative() || t.MoneyReceived.IsNegative() {
		return fmt.Errorf("amounts cannot be negative: %w", apperrors.ErrValidation)
	}
	return nil
}

func (s *transactionService) AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !s.skStore.HasActive(req.ShopkeeperID) {
		return nil, fmt.Errorf("shopkeeper %s is not active: %w", req.ShopkeeperID, apperrors.ErrValidation)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		ShopkeeperID:  req.ShopkeeperID,
		Date:          req.Date,
		Description:   strings.TrimSpace(req.Description),
		GoodsGiven:    req.GoodsGiven,
		MoneyReceived: req.MoneyReceived,
		CreatedAt:     time.Now().UTC(),
	}
	if err := validateTxnAmounts(txn); err != nil {
		return nil, err
	}

	if err := s.repo.SaveTransaction(ctx, txn); err != nil {
		return nil, err
	}
	s.txnStore.InsertActive(txn)
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, ok := s.txnStore.GetActive(transactionID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if req.Date != nil {
		txn.Date = *req.Date
	}
	if req.Description != nil {
		txn.Description = strings.TrimSpace(*req.Description)
	}
	if req.GoodsGiven != nil {
		txn.GoodsGiven = *req.GoodsGiven
	}
	if req.MoneyReceived != nil {
		txn.MoneyReceived = *req.MoneyReceived
	}
	if err := validateTxnAmounts(txn); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateTransaction(ctx, txn); err != nil {
		return nil, err
	}
	s.txnStore.ReplaceActive(txn)
	return &txn, nil
}

func (s *transactionService) SoftDeleteTransaction(ctx context.Context, transactionID string) error {
	if !s.txnStore.HasActive(transactionID) {
		return apperrors.ErrNotFound
	}

	deletedAt := time.Now().UTC()
	if err := s.repo.MarkTransactionDeleted(ctx, transactionID, deletedAt); err != nil {
		return err
	}
	s.txnStore.MoveToDeleted(transactionID, func(t *domain.Transaction) {
		t.DeletedAt = &deletedAt
	})

	s.logger.InfoContext(ctx, "transaction soft-deleted", slog.String("transaction_id", transactionID))
	s.notify()
	return nil
}

// RestoreTransaction brings a deleted transaction back. A transaction whose
// shopkeeper is itself in the recycle bin cannot come back on its own; the
// shopkeeper restore brings it along instead.
func (s *transactionService) RestoreTransaction(ctx context.Context, transactionID string) error {
	txn, ok := s.txnStore.GetDeleted(transactionID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if !s.skStore.HasActive(txn.ShopkeeperID) {
		return fmt.Errorf("shopkeeper %s is deleted, restore it first: %w", txn.ShopkeeperID, apperrors.ErrValidation)
	}

	if err := s.repo.UnmarkTransactionDeleted(ctx, transactionID); err != nil {
		return err
	}
	s.txnStore.MoveToActive(transactionID, func(t *domain.Transaction) {
		t.DeletedAt = nil
	})
	return nil
}

func (s *transactionService) PermanentlyDeleteTransaction(ctx context.Context, transactionID string) error {
	if !s.txnStore.HasDeleted(transactionID) {
		return apperrors.ErrNotFound
	}

	if err := s.repo.DeleteTransaction(ctx, transactionID); err != nil {
		return err
	}
	s.txnStore.RemoveDeleted(transactionID)

	s.logger.InfoContext(ctx, "transaction permanently deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) ListDeletedTransactions(ctx context.Context) []domain.Transaction {
	return s.txnStore.Deleted()
}

// Sweeper integration.

func (s *transactionService) purgeName() string { return "transactions" }

func (s *transactionService) purgeReady() bool { return s.txnStore.Loaded() }

func (s *transactionService) expiredIDs(cutoff time.Time) []string {
	var ids []string
	for _, t := range s.txnStore.Deleted() {
		if t.DeletedAt != nil && t.DeletedAt.Before(cutoff) {
			ids = append(ids, t.TransactionID)
		}
	}
	return ids
}

func (s *transactionService) purge(ctx context.Context, transactionID string) error {
	return s.PermanentlyDeleteTransaction(ctx, transactionID)
}
