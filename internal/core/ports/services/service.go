package services

import "context"

// RetentionSweeperSvc is the periodic purge task for recycle bin contents.
type RetentionSweeperSvc interface {
	// Run blocks, sweeping on an interval and on kicks, until ctx is done.
	Run(ctx context.Context)

	// Kick requests an opportunistic sweep; coalesced if one is queued.
	Kick()
}

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what the
// handlers receive.
type ServiceContainer struct {
	Shopkeeper  ShopkeeperSvcFacade
	Transaction TransactionSvcFacade
	Product     ProductSvcFacade
	Bill        BillSvcFacade
	Reporting   ReportingSvcFacade
	Sweeper     RetentionSweeperSvc
}
