package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup defines a group of routes that can be registered.
type RouteGroup interface {
	// RegisterRoutes registers routes to the given router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// BasketRoutes registers the pricing endpoints.
type BasketRoutes struct {
	handler *Handler
}

// NewBasketRoutes creates a new BasketRoutes instance.
func NewBasketRoutes(handler *Handler) *BasketRoutes {
	return &BasketRoutes{handler: handler}
}

// RegisterRoutes registers quote and catalog routes. The reload route is
// only exposed when a catalog store is configured.
func (r *BasketRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/baskets/quote", r.handler.QuoteBasket)
	rg.GET("/products", r.handler.ListProducts)
	rg.GET("/products/:code", r.handler.GetProduct)

	if r.handler.CanReload() {
		rg.POST("/catalog/reload", r.handler.ReloadCatalog)
	}
}
