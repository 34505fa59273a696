// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/basket-service/config"
	"github.com/guttosm/basket-service/internal/http"
	"github.com/guttosm/basket-service/internal/repository"
	"github.com/guttosm/basket-service/internal/service"
)

const bootstrapTimeout = 10 * time.Second

// App holds the wired router and the resources released on shutdown.
type App struct {
	Router *gin.Engine
	Pricer *service.PricingService

	db     *DatabaseComponents
	router *RouterComponents
}

// InitializeApp creates and wires all application dependencies.
func InitializeApp(cfg config.Config) *App {
	InitializeLogger(cfg.Log)

	dbComponents := InitializeDatabase(cfg.Database)

	var productsRepo repository.ProductsRepositoryInterface
	if dbComponents != nil {
		productsRepo = dbComponents.ProductsRepo
	}
	defaults := cfg.Pricing.Catalog
	if len(defaults) == 0 {
		defaults = service.DefaultCatalogItems()
	}
	catalogStore := service.NewCatalogStore(productsRepo, defaults)

	ctx, cancel := context.WithTimeout(context.Background(), bootstrapTimeout)
	catalog := catalogStore.LoadOrDefault(ctx)
	cancel()

	serviceComponents := InitializeServices(cfg.Pricing, cfg.Cache, catalog)
	routerComponents := InitializeRouter(serviceComponents.Pricer, catalogStore, dbComponents, cfg)

	return &App{
		Router: http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		Pricer: serviceComponents.Pricer,
		db:     dbComponents,
		router: routerComponents,
	}
}

// Close stops background workers and disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	if a.Pricer != nil {
		a.Pricer.Close()
	}
	if a.router != nil && a.router.Config.RateLimiter != nil {
		a.router.Config.RateLimiter.Stop()
	}
	if a.db != nil && a.db.DB != nil {
		return a.db.DB.Close(ctx)
	}
	return nil
}
