package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/shop_management_app/internal/core/ports/services"
	"github.com/SscSPs/shop_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// recycleBinHandler serves the combined recycle bin view across the three
// soft-deleted entity types.
type recycleBinHandler struct {
	shopkeeperService  portssvc.ShopkeeperSvcFacade
	transactionService portssvc.TransactionSvcFacade
	productService     portssvc.ProductSvcFacade
}

// registerRecycleBinRoutes registers the recycle bin route.
func registerRecycleBinRoutes(
	rg *gin.RouterGroup,
	ss portssvc.ShopkeeperSvcFacade,
	ts portssvc.TransactionSvcFacade,
	ps portssvc.ProductSvcFacade,
) {
	h := &recycleBinHandler{
		shopkeeperService:  ss,
		transactionService: ts,
		productService:     ps,
	}
	rg.GET("/recycle-bin", h.getRecycleBin)
}

// getRecycleBin returns every soft-deleted item, most recently deleted
// first within each entity type.
func (h *recycleBinHandler) getRecycleBin(c *gin.Context) {
	ctx := c.Request.Context()
	c.JSON(http.StatusOK, dto.ToRecycleBinResponse(
		h.shopkeeperService.ListDeletedShopkeepers(ctx),
		h.transactionService.ListDeletedTransactions(ctx),
		h.productService.ListDeletedProducts(ctx),
	))
}
