package handlers

import (
	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/middleware"
	"github.com/SscSPs/shop_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerHomeRoutes(r)

	// Public authentication routes
	registerAuthRoutes(r, cfg)

	// Everything else sits behind the shared-admin session
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerShopkeeperRoutes(v1, services.Shopkeeper, services.Transaction)
	registerTransactionRoutes(v1, services.Transaction)
	registerProductRoutes(v1, services.Product)
	registerRecycleBinRoutes(v1, services.Shopkeeper, services.Transaction, services.Product)
	registerBillRoutes(v1, services.Bill)
	registerReportingRoutes(v1, services.Reporting)
}
