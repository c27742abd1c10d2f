package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// TransactionReaderSvc exposes transaction lookups over the active set.
type TransactionReaderSvc interface {
	// GetTransactionByID returns an active transaction or apperrors.ErrNotFound.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns all active transactions, date descending.
	ListTransactions(ctx context.Context) []domain.Transaction

	// ListTransactionsByShopkeeper returns one shopkeeper's active
	// transactions, date descending.
	ListTransactionsByShopkeeper(ctx context.Context, shopkeeperID string) []domain.Transaction
}

// TransactionWriterSvc exposes create/update operations.
type TransactionWriterSvc interface {
	AddTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
}

// TransactionLifecycleSvc is the soft-delete state machine for transactions.
// Non-cascading analog of the shopkeeper lifecycle.
type TransactionLifecycleSvc interface {
	SoftDeleteTransaction(ctx context.Context, transactionID string) error
	RestoreTransaction(ctx context.Context, transactionID string) error
	PermanentlyDeleteTransaction(ctx context.Context, transactionID string) error
	ListDeletedTransactions(ctx context.Context) []domain.Transaction
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionLifecycleSvc

	Reload(ctx context.Context) error
}
