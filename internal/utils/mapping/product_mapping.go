package mapping

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:    d.ProductID,
		Name:         d.Name,
		CostPrice:    d.CostPrice,
		SellingPrice: d.SellingPrice,
		CreatedAt:    d.CreatedAt,
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainProduct converts a model Product to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:    m.ProductID,
		Name:         m.Name,
		CostPrice:    m.CostPrice,
		SellingPrice: m.SellingPrice,
		CreatedAt:    m.CreatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainProductSlice converts a slice of model Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
