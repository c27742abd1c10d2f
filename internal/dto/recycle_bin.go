package dto

import "github.com/SscSPs/shop_management_app/internal/core/domain"

// RecycleBinResponse is the combined recycle bin view: the deleted sets of
// all three swept entity types.
type RecycleBinResponse struct {
	Shopkeepers  []ShopkeeperResponse  `json:"shopkeepers"`
	Transactions []TransactionResponse `json:"transactions"`
	Products     []ProductResponse     `json:"products"`
}

// ToRecycleBinResponse assembles the recycle bin view from the deleted sets.
func ToRecycleBinResponse(shopkeepers []domain.Shopkeeper, txns []domain.Transaction, products []domain.Product) RecycleBinResponse {
	return RecycleBinResponse{
		Shopkeepers:  ToListShopkeepersResponse(shopkeepers).Shopkeepers,
		Transactions: ToListTransactionsResponse(txns).Transactions,
		Products:     ToListProductsResponse(products).Products,
	}
}
