package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
)

// ShopkeeperReader defines read operations for shopkeeper data.
type ShopkeeperReader interface {
	// FindShopkeeperByID retrieves an active shopkeeper by ID.
	FindShopkeeperByID(ctx context.Context, shopkeeperID string) (*domain.Shopkeeper, error)

	// FindShopkeepers retrieves all active shopkeepers, newest first.
	FindShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error)

	// FindDeletedShopkeepers retrieves the recycle bin, most recently deleted first.
	FindDeletedShopkeepers(ctx context.Context) ([]domain.Shopkeeper, error)
}

// ShopkeeperWriter defines write operations for shopkeeper data.
type ShopkeeperWriter interface {
	// SaveShopkeeper persists a new shopkeeper.
	SaveShopkeeper(ctx context.Context, shopkeeper domain.Shopkeeper) error

	// UpdateShopkeeper updates an active shopkeeper's details. Never touches deleted_at.
	UpdateShopkeeper(ctx context.Context, shopkeeper domain.Shopkeeper) error
}

// ShopkeeperLifecycleManager defines soft-delete lifecycle operations.
// The shopkeeper -> transaction cascade runs inside a single database
// transaction so the parent and its dependents can never diverge.
type ShopkeeperLifecycleManager interface {
	// MarkShopkeeperDeleted soft-deletes the shopkeeper and all of its active
	// transactions with the same timestamp. Returns the IDs of the cascaded
	// transactions.
	MarkShopkeeperDeleted(ctx context.Context, shopkeeperID string, deletedAt time.Time) ([]string, error)

	// UnmarkShopkeeperDeleted restores the shopkeeper and every currently
	// deleted transaction belonging to it. Returns the restored transaction IDs.
	UnmarkShopkeeperDeleted(ctx context.Context, shopkeeperID string) ([]string, error)

	// DeleteShopkeeper hard-deletes the row; transaction rows go with it via
	// the FK cascade constraint.
	DeleteShopkeeper(ctx context.Context, shopkeeperID string) error

	// CountTransactionsForShopkeeper counts surviving transaction rows for a
	// shopkeeper, deleted or not. Used to verify the storage-level cascade.
	CountTransactionsForShopkeeper(ctx context.Context, shopkeeperID string) (int64, error)
}

// ShopkeeperRepositoryFacade combines all shopkeeper repository interfaces.
type ShopkeeperRepositoryFacade interface {
	ShopkeeperReader
	ShopkeeperWriter
	ShopkeeperLifecycleManager
}
