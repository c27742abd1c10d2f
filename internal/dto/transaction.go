package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount signs are validated in the service layer; decimals bind from JSON
// numbers or strings.
type CreateTransactionRequest struct {
	ShopkeeperID  string          `json:"shopkeeperID" binding:"required"`
	Date          time.Time       `json:"date" binding:"required"`
	Description   string          `json:"description"`
	GoodsGiven    decimal.Decimal `json:"goodsGiven"`
	MoneyReceived decimal.Decimal `json:"moneyReceived"`
}

// UpdateTransactionRequest defines the fields allowed to change on a
// transaction. ShopkeeperID is immutable after creation.
type UpdateTransactionRequest struct {
	Date          *time.Time       `json:"date"`
	Description   *string          `json:"description"`
	GoodsGiven    *decimal.Decimal `json:"goodsGiven"`
	MoneyReceived *decimal.Decimal `json:"moneyReceived"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	ShopkeeperID  string          `json:"shopkeeperID"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	GoodsGiven    decimal.Decimal `json:"goodsGiven"`
	MoneyReceived decimal.Decimal `json:"moneyReceived"`
	CreatedAt     time.Time       `json:"createdAt"`
	DeletedAt     *time.Time      `json:"deletedAt,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		ShopkeeperID:  t.ShopkeeperID,
		Date:          t.Date,
		Description:   t.Description,
		GoodsGiven:    t.GoodsGiven,
		MoneyReceived: t.MoneyReceived,
		CreatedAt:     t.CreatedAt,
		DeletedAt:     t.DeletedAt,
	}
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts a slice of domain Transactions.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	resp := make([]TransactionResponse, len(txns))
	for i := range txns {
		resp[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: resp}
}
