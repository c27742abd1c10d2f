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

type PgxShopkeeperRepository struct {
	BaseRepository
}

// newPgxShopkeeperRepository creates a new repository for shopkeeper data.
func newPgxShopkeeperRepository(pool *pgxpool.Pool) portsrepo.ShopkeeperRepositoryFacade {
	return &PgxShopkeeperRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxShopkeeperRepository implements the facade
var _ portsrepo.ShopkeeperRepositoryFacade = (*PgxShopkeeperRepository)(nil)

const shopkeeperColumns = `shopkeeper_id, name, COALESCE(mobile_number, ''), COALESCE(address, ''), created_at, deleted_at`

func scanShopkeeper(row pgx.Row) (models.Shopkeeper, error) {
	var m models.Shopkeeper
	err := row.Scan(
		&m.ShopkeeperID,
		&m.Name,
		&m.MobileNumber,
		&m.Address,
		&m.CreatedAt,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxShopkeeperRepository) SaveShopkeeper(ctx context.Context, shopkeeper domain.Shopkeeper) error {
	m := mapping.ToModelShopkeeper(shopkeeper)
	query := `
		INSERT INTO shopkeepers (shopkeeper_id, name, mobile_number, address, created_at)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.ShopkeeperID, m.Name, m.MobileNumber, m.Address, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save shopkeeper: %w", err)
	}
	return nil
}

func (r *PgxShopkeeperRepository) FindShopkeeperByID(ctx context.Context, shopkeeperID string) (*domain.Shopkeeper, error) {
	query := `
		SELECT ` + shopkeeperColumns + `
		FROM shopkeepers
		WHERE shopkeeper_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanShopkeeper(r.Pool.QueryRow(ctx, query, shopkeeperID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shopkeeper by ID %s: %w", shopkeeperID, err)
	}
	d := mapping.ToDomainShopkeeper(m)
	return &d, nil
}

func (r *PgxShopkeeperRepository) FindShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error) {
	query := `
		SELECT ` + shopkeeperColumns + `
		FROM shopkeepers
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	return r.queryShopkeepers(ctx, query)
}

func (r *PgxShopkeeperRepository) FindDeletedShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error) {
	query := `
		SELECT ` + shopkeeperColumns + `
		FROM shopkeepers
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC;
	`
	return r.queryShopkeepers(ctx, query)
}

func (r *PgxShopkeeperRepository) queryShopkeepers(ctx context.Context, query string, args ...any) ([]domain.Shopkeeper, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query shopkeepers: %w", err)
	}
	defer rows.Close()

	ms := []models.Shopkeeper{}
	for rows.Next() {
		m, err := scanShopkeeper(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopkeeper row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating shopkeeper rows: %w", rows.Err())
	}
	return mapping.ToDomainShopkeeperSlice(ms), nil
}

func (r *PgxShopkeeperRepository) UpdateShopkeeper(ctx context.Context, shopkeeper domain.Shopkeeper) error {
	m := mapping.ToModelShopkeeper(shopkeeper)
	query := `
		UPDATE shopkeepers
		SET name = $1, mobile_number = NULLIF($2, ''), address = NULLIF($3, '')
		WHERE shopkeeper_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.MobileNumber, m.Address, m.ShopkeeperID)
	if err != nil {
		return fmt.Errorf("failed to execute update shopkeeper query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("shopkeeper not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

// MarkShopkeeperDeleted soft-deletes the shopkeeper and cascades the same
// deleted_at to its active transactions inside one database transaction, so
// the parent and its dependents can never diverge.
func (r *PgxShopkeeperRepository) MarkShopkeeperDeleted(ctx context.Context, shopkeeperID string, deletedAt time.Time) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	parentQuery := `
		UPDATE shopkeepers
		SET deleted_at = $1
		WHERE shopkeeper_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, parentQuery, deletedAt, shopkeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark shopkeeper as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("shopkeeper not found or already deleted: %w", apperrors.ErrNotFound)
	}

	cascadeQuery := `
		UPDATE transactions
		SET deleted_at = $1
		WHERE shopkeeper_id = $2 AND deleted_at IS NULL
		RETURNING transaction_id;
	`
	cascaded, err := r.collectIDs(ctx, tx, cascadeQuery, deletedAt, shopkeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade delete to transactions: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return cascaded, nil
}

// UnmarkShopkeeperDeleted restores the shopkeeper and every currently
// deleted transaction belonging to it, independently deleted ones included.
func (r *PgxShopkeeperRepository) UnmarkShopkeeperDeleted(ctx context.Context, shopkeeperID string) ([]string, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	parentQuery := `
		UPDATE shopkeepers
		SET deleted_at = NULL
		WHERE shopkeeper_id = $1 AND deleted_at IS NOT NULL;
	`
	cmdTag, err := tx.Exec(ctx, parentQuery, shopkeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to restore shopkeeper: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("shopkeeper not found in recycle bin: %w", apperrors.ErrNotFound)
	}

	cascadeQuery := `
		UPDATE transactions
		SET deleted_at = NULL
		WHERE shopkeeper_id = $1 AND deleted_at IS NOT NULL
		RETURNING transaction_id;
	`
	restored, err := r.collectIDs(ctx, tx, cascadeQuery, shopkeeperID)
	if err != nil {
		return nil, fmt.Errorf("failed to cascade restore to transactions: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return restored, nil
}

func (r *PgxShopkeeperRepository) collectIDs(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]string, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PgxShopkeeperRepository) DeleteShopkeeper(ctx context.Context, shopkeeperID string) error {
	query := `DELETE FROM shopkeepers WHERE shopkeeper_id = $1 AND deleted_at IS NOT NULL;`
	cmdTag, err := r.Pool.Exec(ctx, query, shopkeeperID)
	if err != nil {
		return fmt.Errorf("failed to permanently delete shopkeeper: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("shopkeeper not found in recycle bin: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxShopkeeperRepository) CountTransactionsForShopkeeper(ctx context.Context, shopkeeperID string) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM transactions WHERE shopkeeper_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, shopkeeperID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions for shopkeeper %s: %w", shopkeeperID, err)
	}
	return count, nil
}
