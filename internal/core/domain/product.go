package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry used when composing bills. Products have no
// cascade relationships; their lifecycle is independent of everything else.
type Product struct {
	ProductID    string          `json:"productID"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CreatedAt    time.Time       `json:"createdAt"`
	DeletedAt    *time.Time      `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the product is currently soft-deleted.
func (p Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
