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

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxProductRepository implements the facade
var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, cost_price, selling_price, created_at, deleted_at`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID,
		&m.Name,
		&m.CostPrice,
		&m.SellingPrice,
		&m.CreatedAt,
		&m.DeletedAt,
	)
	return m, err
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (product_id, name, cost_price, selling_price, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query, m.ProductID, m.Name, m.CostPrice, m.SellingPrice, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) FindProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE deleted_at IS NULL
		ORDER BY created_at DESC;
	`
	return r.queryProducts(ctx, query)
}

func (r *PgxProductRepository) FindDeletedProducts(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE deleted_at IS NOT NULL
		ORDER BY deleted_at DESC;
	`
	return r.queryProducts(ctx, query)
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	ms := []models.Product{}
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", rows.Err())
	}
	return mapping.ToDomainProductSlice(ms), nil
}

func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $1, cost_price = $2, selling_price = $3
		WHERE product_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.CostPrice, m.SellingPrice, m.ProductID)
	if err != nil {
		return fmt.Errorf("failed to execute update product query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) MarkProductDeleted(ctx context.Context, productID string, deletedAt time.Time) error {
	query := `
		UPDATE products
		SET deleted_at = $1
		WHERE product_id = $2 AND deleted_at IS NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, productID)
	if err != nil {
		return fmt.Errorf("failed to mark product as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) UnmarkProductDeleted(ctx context.Context, productID string) error {
	query := `
		UPDATE products
		SET deleted_at = NULL
		WHERE product_id = $1 AND deleted_at IS NOT NULL;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to restore product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found in recycle bin: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	query := `DELETE FROM products WHERE product_id = $1 AND deleted_at IS NOT NULL;`
	cmdTag, err := r.Pool.Exec(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("failed to permanently delete product: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("product not found in recycle bin: %w", apperrors.ErrNotFound)
	}
	return nil
}
