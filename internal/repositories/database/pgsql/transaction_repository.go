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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements the facade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, shopkeeper_id, txn_date, COALESCE(description, ''), goods_given, money_received, created_at, deleted_at`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.ShopkeeperID,
		&m.Date,
		&m.Description,
		&m.GoodsGiven,
		&m.MoneyReceived,
		&m.CreatedAt,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, shopkeeper_id, txn_date, description, goods_given, money_received, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.ShopkeeperID,
		m.Date,
		m.Description,
		m.GoodsGiven,
		m.MoneyReceived,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

func (r *PgxTransactionRepository) FindTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE deleted_at IS NULL
		ORDER BY txn_date DESC, created_at DESC;
	`
	return r.queryTransactions(ctx, query)
}

func (r *PgxTransactionRepository) FindDeletedTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC;
	`
	return r.queryTransactions(ctx, query)
}

func (r *PgxTransactionRepository) FindTransactionsByShopkeeper(ctx context.Context, shopkeeperID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE shopkeeper_id = $1 AND deleted_at IS NULL
		ORDER BY txn_date DESC, created_at DESC;
	`
	return r.queryTransactions(ctx, query, shopkeeperID)
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	ms := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET txn_date = $1, description = NULLIF($2, ''), goods_given = $3, money_received = $4
		WHERE transaction_id = $5 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Date, m.Description, m.GoodsGiven, m.MoneyReceived, m.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to execute update transaction query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) MarkTransactionDeleted(ctx context.Context, transactionID string, deletedAt time.Time) error {
	query := `
		UPDATE transactions
		SET deleted_at = $1
		WHERE transaction_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, transactionID)
	if err != nil {
		return fmt.Errorf("failed to mark transaction as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) UnmarkTransactionDeleted(ctx context.Context, transactionID string) error {
	query := `
		UPDATE transactions
		SET deleted_at = NULL
		WHERE transaction_id = $1 AND deleted_at IS NOT NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to restore transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found in recycle bin: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1 AND deleted_at IS NOT NULL;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to permanently delete transaction: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("transaction not found in recycle bin: %w", apperrors.ErrNotFound)
	}
	return nil
}
