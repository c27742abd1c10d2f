package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a product.
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
}

// UpdateProductRequest defines the fields allowed to change on a product.
type UpdateProductRequest struct {
	Name         *string          `json:"name"`
	CostPrice    *decimal.Decimal `json:"costPrice"`
	SellingPrice *decimal.Decimal `json:"sellingPrice"`
}

// ProductResponse is the API representation of a product.
type ProductResponse struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
	DeletedAt    *time.Time      `json:"deletedAt,omitempty"`
}

// ToProductResponse converts a domain Product to its response DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:    p.ProductID,
		Name:         p.Name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		CreatedAt:    p.CreatedAt,
		DeletedAt:    p.DeletedAt,
	}
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToListProductsResponse converts a slice of domain Products.
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	resp := make([]ProductResponse, len(products))
	for i := range products {
		resp[i] = ToProductResponse(&products[i])
	}
	return ListProductsResponse{Products: resp}
}
