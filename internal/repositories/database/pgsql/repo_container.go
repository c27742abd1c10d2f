package pgsql

import (
	portsrepo "github.com/SscSPs/shop_management_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql repository against the shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShopkeeperRepo:  newPgxShopkeeperRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
		BillRepo:        newPgxBillRepository(dbPool),
		ReportingRepo:   newReportingRepository(dbPool),
	}
}
