// Package app provides router configuration.
package app

import (
	"context"
	"errors"

	"github.com/guttosm/basket-service/config"
	"github.com/guttosm/basket-service/internal/http"
	"github.com/guttosm/basket-service/internal/middleware"
	"github.com/guttosm/basket-service/internal/service"
)

var errEmptyCatalog = errors.New("catalog has no products")

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers, health checks and router configuration.
func InitializeRouter(
	pricer service.BasketPricer,
	catalogStore *service.CatalogStore,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(pricer, http.WithCatalogReloader(catalogStore))
	healthHandler := http.NewHealthHandler()

	healthHandler.RegisterChecker("catalog", http.HealthCheckFunc(func(context.Context) error {
		if len(pricer.Products()) == 0 {
			return errEmptyCatalog
		}
		return nil
	}), true)

	if dbComponents != nil {
		// The configured catalog keeps quotes flowing while MongoDB is down.
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck), false)
		healthHandler.RegisterCircuitBreaker("mongodb_products", dbComponents.ProductsCircuitBreaker)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}
	if routerCfg.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(routerCfg.RateLimit, routerCfg.RateWindow)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
