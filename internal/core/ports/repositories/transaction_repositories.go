package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves an active transaction by ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactions retrieves all active transactions, date descending.
	FindTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindDeletedTransactions retrieves the recycle bin, most recently deleted first.
	FindDeletedTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindTransactionsByShopkeeper retrieves the active transactions of one
	// shopkeeper, date descending.
	FindTransactionsByShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction updates an active transaction's mutable fields.
	// ShopkeeperID and deleted_at are never touched here.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionLifecycleManager defines soft-delete lifecycle operations.
type TransactionLifecycleManager interface {
	// MarkTransactionDeleted soft-deletes an active transaction.
	MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time) error

	// UnmarkTransactionDeleted restores a deleted transaction.
	UnmarkTransactionDeleted(ctx context.Context, transactionID string) error

	// DeleteTransaction hard-deletes the row.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
	TransactionLifecycleManager
}
