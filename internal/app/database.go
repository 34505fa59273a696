// Package app provides database initialization and setup.
package app

import (
	"github.com/guttosm/basket-service/config"
	"github.com/guttosm/basket-service/internal/circuitbreaker"
	"github.com/guttosm/basket-service/internal/metrics"
	"github.com/guttosm/basket-service/internal/repository"
	"github.com/rs/zerolog/log"
)

const productsCircuitName = "mongodb-products"

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	ProductsRepo           repository.ProductsRepositoryInterface
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and wraps the products repository in
// a circuit breaker. Returns nil if the database is disabled or unreachable,
// in which case the catalog is served from configuration.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing with the configured catalog")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	productsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             productsCircuitName,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
	metrics.SetCircuitBreakerState(productsCircuitName, int(circuitbreaker.StateClosed))

	productsRepo := repository.NewProductsRepository(db)

	return &DatabaseComponents{
		DB:                     db,
		ProductsRepo:           repository.NewProductsRepositoryWithCircuitBreaker(productsRepo, productsCB),
		ProductsCircuitBreaker: productsCB,
	}
}
