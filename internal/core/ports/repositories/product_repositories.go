package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// ProductReader defines read operations for product data.
type ProductReader interface {
	// FindProductByID retrieves an active product by ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProducts retrieves all active products, newest first.
	FindProducts(ctx context.Context) ([]domain.Product, error)

	// FindDeletedProducts retrieves the recycle bin, most recently deleted first.
	FindDeletedProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data.
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an active product's details.
	UpdateProduct(ctx context.Context, product domain.Product) error
}

// ProductLifecycleManager defines soft-delete lifecycle operations.
type ProductLifecycleManager interface {
	// MarkProductDeleted soft-deletes an active product.
	MarkProductDeleted(ctx context.Context, productID string, deletedAt time.Time) error

	// UnmarkProductDeleted restores a deleted product.
	UnmarkProductDeleted(ctx context.Context, productID string) error

	// DeleteProduct hard-deletes the row.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
	ProductLifecycleManager
}
