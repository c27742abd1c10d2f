package mapping

import (
	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/models"
)

// ToModelShopkeeper converts a domain Shopkeeper to a model Shopkeeper.
func ToModelShopkeeper(d domain.Shopkeeper) models.Shopkeeper {
	return models.Shopkeeper{
		ShopkeeperID: d.ShopkeeperID,
		Name:         d.Name,
		MobileNumber: d.MobileNumber,
		Address:      d.Address,
		CreatedAt:    d.CreatedAt,
		DeletedAt:    d.DeletedAt,
	}
}

// ToDomainShopkeeper converts a model Shopkeeper to a domain Shopkeeper.
func ToDomainShopkeeper(m models.Shopkeeper) domain.Shopkeeper {
	return domain.Shopkeeper{
		ShopkeeperID: m.ShopkeeperID,
		Name:         m.Name,
		MobileNumber: m.MobileNumber,
		Address:      m.Address,
		CreatedAt:    m.CreatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

// ToDomainShopkeeperSlice converts a slice of model Shopkeepers.
func ToDomainShopkeeperSlice(ms []models.Shopkeeper) []domain.Shopkeeper {
	ds := make([]domain.Shopkeeper, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainShopkeeper(m)
	}
	return ds
}
