package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product mirrors the products table.
type Product struct {
	ProductID    string          `db:"product_id"`
	Name         string          `db:"name"`
	CostPrice    decimal.Decimal `db:"cost_price"`
	SellingPrice decimal.Decimal `db:"selling_price"`
	CreatedAt    time.Time       `db:"created_at"`
	DeletedAt    *time.Time      `db:"deleted_at"`
}
