package dto

import (
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// CreateShopkeeperRequest defines the data needed to create a shopkeeper.
type CreateShopkeeperRequest struct {
	Name         string `json:"name" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"omitempty,mobilenumber"`
	Address      string `json:"address"`
}

// UpdateShopkeeperRequest defines the data allowed for updating a shopkeeper.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateShopkeeperRequest struct {
	Name         *string `json:"name"`
	MobileNumber *string `json:"mobileNumber" binding:"omitempty"`
	Address      *string `json:"address"`
}

// ShopkeeperResponse is the API representation of a shopkeeper.
type ShopkeeperResponse struct {
	ShopkeeperID string     `json:"shopkeeperID"`
	Name         string     `json:"name"`
	MobileNumber string     `json:"mobileNumber,omitempty"`
	Address      string     `json:"address,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// ToShopkeeperResponse converts a domain Shopkeeper to its response DTO.
func ToShopkeeperResponse(s *domain.Shopkeeper) ShopkeeperResponse {
	return ShopkeeperResponse{
		ShopkeeperID: s.ShopkeeperID,
		Name:         s.Name,
		MobileNumber: s.MobileNumber,
		Address:      s.Address,
		CreatedAt:    s.CreatedAt,
		DeletedAt:    s.DeletedAt,
	}
}

// ListShopkeepersResponse wraps the list of shopkeepers.
type ListShopkeepersResponse struct {
	Shopkeepers []ShopkeeperResponse `json:"shopkeepers"`
}

// ToListShopkeepersResponse converts a slice of domain Shopkeepers.
func ToListShopkeepersResponse(shopkeepers []domain.Shopkeeper) ListShopkeepersResponse {
	resp := make([]ShopkeeperResponse, len(shopkeepers))
	for i := range shopkeepers {
		resp[i] = ToShopkeeperResponse(&shopkeepers[i])
	}
	return ListShopkeepersResponse{Shopkeepers: resp}
}
