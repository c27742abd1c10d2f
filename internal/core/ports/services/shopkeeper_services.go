package services

import (
	"context"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	"github.com/SscSPs/shop_management_app/internal/dto"
)

// ShopkeeperReaderSvc exposes shopkeeper lookups to other services. Lookups
// resolve active shopkeepers only; recycle bin contents are reachable
// through the lifecycle interface.
type ShopkeeperReaderSvc interface {
	// GetShopkeeperByID returns an active shopkeeper or apperrors.ErrNotFound.
	GetShopkeeperByID(ctx context.Context, shopkeeperID string) (*domain.Shopkeeper, error)

	// ListShopkeepers returns all active shopkeepers, newest first.
	ListShopkeepers(ctx context.Context) []domain.Shopkeeper

	// HasActiveShopkeeper reports whether the ID is in the active set.
	HasActiveShopkeeper(shopkeeperID string) bool

	// HasDeletedShopkeeper reports whether the ID is in the recycle bin.
	HasDeletedShopkeeper(shopkeeperID string) bool
}

// ShopkeeperWriterSvc exposes create/update operations.
type ShopkeeperWriterSvc interface {
	CreateShopkeeper(ctx context.Context, req dto.CreateShopkeeperRequest) (*domain.Shopkeeper, error)
	UpdateShopkeeper(ctx context.Context, shopkeeperID string, req dto.UpdateShopkeeperRequest) (*domain.Shopkeeper, error)
}

// ShopkeeperLifecycleSvc is the soft-delete state machine for shopkeepers,
// including the shopkeeper -> transaction cascade.
type ShopkeeperLifecycleSvc interface {
	// SoftDeleteShopkeeper moves an active shopkeeper and all of its active
	// transactions to the recycle bin with a single shared timestamp.
	SoftDeleteShopkeeper(ctx context.Context, shopkeeperID string) error

	// RestoreShopkeeper moves a deleted shopkeeper back to the active set and
	// restores every currently deleted transaction belonging to it.
	RestoreShopkeeper(ctx context.Context, shopkeeperID string) error

	// PermanentlyDeleteShopkeeper removes a deleted shopkeeper from the
	// backing store for good. May return apperrors.ErrCascadeInconsistency
	// as a warning when dependent rows survive the storage-level cascade.
	PermanentlyDeleteShopkeeper(ctx context.Context, shopkeeperID string) error

	// ListDeletedShopkeepers returns the recycle bin contents.
	ListDeletedShopkeepers(ctx context.Context) []domain.Shopkeeper
}

// ShopkeeperSvcFacade combines all shopkeeper service interfaces.
type ShopkeeperSvcFacade interface {
	ShopkeeperReaderSvc
	ShopkeeperWriterSvc
	ShopkeeperLifecycleSvc

	// Reload refreshes the in-memory mirrors from the backing store.
	Reload(ctx context.Context) error
}
