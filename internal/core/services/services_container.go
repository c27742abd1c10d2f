package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/shop_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/platform/config"
)

// cmpDeletedAtDesc orders recycle bin entries most recently deleted first.
func cmpDeletedAtDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return b.Compare(*a)
}

// newShopkeeperStore mirrors shopkeepers, newest first.
func newShopkeeperStore() *entityStore[domain.Shopkeeper] {
	return newEntityStore(
		func(s domain.Shopkeeper) string { return s.ShopkeeperID },
		func(a, b domain.Shopkeeper) int { return b.CreatedAt.Compare(a.CreatedAt) },
		func(a, b domain.Shopkeeper) int { return cmpDeletedAtDesc(a.DeletedAt, b.DeletedAt) },
	)
}

// newTransactionStore mirrors transactions, date descending.
func newTransactionStore() *entityStore[domain.Transaction] {
	return newEntityStore(
		func(t domain.Transaction) string { return t.TransactionID },
		func(a, b domain.Transaction) int {
			if c := b.Date.Compare(a.Date); c != 0 {
				return c
			}
			return b.CreatedAt.Compare(a.CreatedAt)
		},
		func(a, b domain.Transaction) int { return cmpDeletedAtDesc(a.DeletedAt, b.DeletedAt) },
	)
}

// newProductStore mirrors products, newest first.
func newProductStore() *entityStore[domain.Product] {
	return newEntityStore(
		func(p domain.Product) string { return p.ProductID },
		func(a, b domain.Product) int { return b.CreatedAt.Compare(a.CreatedAt) },
		func(a, b domain.Product) int { return cmpDeletedAtDesc(a.DeletedAt, b.DeletedAt) },
	)
}

// NewServiceContainer creates the service container with properly initialized
// dependencies. The shopkeeper and transaction services share mirrors so the
// delete cascade keeps both sides consistent, and all three lifecycle
// services feed the retention sweeper.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	skStore := newShopkeeperStore()
	txnStore := newTransactionStore()
	productStore := newProductStore()

	shopkeeperSvc := newShopkeeperService(repos.ShopkeeperRepo, skStore, txnStore, logger)
	transactionSvc := newTransactionService(repos.TransactionRepo, txnStore, skStore, logger)
	productSvc := newProductService(repos.ProductRepo, productStore, logger)
	billSvc := newBillService(repos.BillRepo, logger)
	reportingSvc := newReportingService(repos.ReportingRepo, txnStore, skStore)

	sweeper := newRetentionSweeper(
		cfg.RetentionDuration(),
		cfg.SweepInterval,
		cfg.StorageCallTimeout,
		[]purgeTarget{shopkeeperSvc, transactionSvc, productSvc},
		logger,
	)
	shopkeeperSvc.setDeletionNotifier(sweeper.Kick)
	transactionSvc.setDeletionNotifier(sweeper.Kick)
	productSvc.setDeletionNotifier(sweeper.Kick)

	return &portssvc.ServiceContainer{
		Shopkeeper:  shopkeeperSvc,
		Transaction: transactionSvc,
		Product:     productSvc,
		Bill:        billSvc,
		Reporting:   reportingSvc,
		Sweeper:     sweeper,
	}
}

// LoadMirrors performs the initial snapshot load for every mirrored entity.
// The sweeper skips entity types whose load has not completed yet, so a slow
// or failed load never causes premature purging.
func LoadMirrors(ctx context.Context, c *portssvc.ServiceContainer) error {
	if err := c.Shopkeeper.Reload(ctx); err != nil {
		return fmt.Errorf("shopkeeper mirror: %w", err)
	}
	if err := c.Transaction.Reload(ctx); err != nil {
		return fmt.Errorf("transaction mirror: %w", err)
	}
	if err := c.Product.Reload(ctx); err != nil {
		return fmt.Errorf("product mirror: %w", err)
	}
	return nil
}
