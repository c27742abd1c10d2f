package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors the transactions table. Amounts are NUMERIC columns
// scanned into shopspring decimals.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	ShopkeeperID  string          `db:"shopkeeper_id"`
	Date          time.Time       `db:"txn_date"`
	Description   string          `db:"description"`
	GoodsGiven    decimal.Decimal `db:"goods_given"`
	MoneyReceived decimal.Decimal `db:"money_received"`
	CreatedAt     time.Time       `db:"created_at"`
	DeletedAt     *time.Time      `db:"deleted_at"`
}
