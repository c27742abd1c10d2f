package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// ProductSvcFacade is the product catalog service: CRUD plus the
// non-cascading soft-delete lifecycle.
type ProductSvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context) []domain.Product
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	SoftDeleteProduct(ctx context.Context, productID string) error
	RestoreProduct(ctx context.Context, productID string) error
	PermanentlyDeleteProduct(ctx context.Context, productID string) error
	ListDeletedProducts(ctx context.Context) []domain.Product

	Reload(ctx context.Context) error
}
