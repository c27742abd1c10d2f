package domain

import "github.com/shopspring/decimal"

// ShopkeeperSummaryRow aggregates the active transactions of one shopkeeper.
// Outstanding is goods given minus money received.
type ShopkeeperSummaryRow struct {
	ShopkeeperID       string          `json:"shopkeeperID"`
	ShopkeeperName     string          `json:"shopkeeperName"`
	TransactionCount   int64           `json:"transactionCount"`
	TotalGoodsGiven    decimal.Decimal `json:"totalGoodsGiven"`
	TotalMoneyReceived decimal.Decimal `json:"totalMoneyReceived"`
	Outstanding        decimal.Decimal `json:"outstanding"`
}

// DailySalesRow aggregates the bills of one calendar day.
type DailySalesRow struct {
	Day         string          `json:"day"` // YYYY-MM-DD
	BillCount   int64           `json:"billCount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	PaidAmount  decimal.Decimal `json:"paidAmount"`
}
