package models

import "time"

// Shopkeeper mirrors the shopkeepers table.
// MobileNumber and Address are empty strings when the columns are NULL;
// the repository coalesces on scan.
type Shopkeeper struct {
	ShopkeeperID string     `db:"shopkeeper_id"`
	Name         string     `db:"name"`
	MobileNumber string     `db:"mobile_number"`
	Address      string     `db:"address"`
	CreatedAt    time.Time  `db:"created_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}
