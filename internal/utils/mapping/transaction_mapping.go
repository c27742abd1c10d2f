package mapping

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ShopkeeperID:  d.ShopkeeperID,
		Date:          d.Date,
		Description:   d.Description,
		GoodsGiven:    d.GoodsGiven,
		MoneyReceived: d.MoneyReceived,
		CreatedAt:     d.CreatedAt,
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		ShopkeeperID:  m.ShopkeeperID,
		Date:          m.Date,
		Description:   m.Description,
		GoodsGiven:    m.GoodsGiven,
		MoneyReceived: m.MoneyReceived,
		CreatedAt:     m.CreatedAt,
		DeletedAt:     m.DeletedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
