package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction records goods given to a shopkeeper and money received back on
// a given date. Amounts are non-negative; validation happens in the service
// layer before anything is persisted.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	ShopkeeperID  string          `json:"shopkeeperID"` // FK -> shopkeepers.shopkeeper_id
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	GoodsGiven    decimal.Decimal `json:"goodsGiven"`
	MoneyReceived decimal.Decimal `json:"moneyReceived"`
	CreatedAt     time.Time       `json:"createdAt"`
	DeletedAt     *time.Time      `json:"deletedAt,omitempty"`
}

// IsDeleted reports whether the transaction is currently soft-deleted.
func (t Transaction) IsDeleted() bool {
	return t.DeletedAt != nil
}
