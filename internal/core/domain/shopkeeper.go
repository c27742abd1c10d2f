package domain

import "time"

// Shopkeeper represents a khata account holder the shop gives goods to on
// credit. A shopkeeper owns zero or more transactions by ShopkeeperID.
type Shopkeeper struct {
	ShopkeeperID string     `json:"shopkeeperID"`
	Name         string     `json:"name"`
	MobileNumber string     `json:"mobileNumber,omitempty"` // Optional
	Address      string     `json:"address,omitempty"`      // Optional
	CreatedAt    time.Time  `json:"createdAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"` // Non-nil while in the recycle bin
}

// IsDeleted reports whether the shopkeeper is currently soft-deleted.
func (s Shopkeeper) IsDeleted() bool {
	return s.DeletedAt != nil
}
