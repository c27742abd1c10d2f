package repositories

// RepositoryProvider bundles every repository facade the service container
// needs. Constructed once at startup from the pgsql package.
type RepositoryProvider struct {
	ShopkeeperRepo  ShopkeeperRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ProductRepo     ProductRepositoryFacade
	BillRepo        BillRepositoryFacade
	ReportingRepo   ReportingRepository
}
