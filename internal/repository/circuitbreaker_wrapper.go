// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/basket-service/internal/circuitbreaker"
	"github.com/guttosm/basket-service/internal/domain/model"
)

// ProductsRepositoryWithCircuitBreaker wraps a products repository with circuit breaker protection.
type ProductsRepositoryWithCircuitBreaker struct {
	repo           ProductsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewProductsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewProductsRepositoryWithCircuitBreaker(repo ProductsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *ProductsRepositoryWithCircuitBreaker {
	return &ProductsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// List returns every product. An open circuit surfaces as circuitbreaker.ErrCircuitOpen
// so callers can fall back to the catalog they already hold.
func (r *ProductsRepositoryWithCircuitBreaker) List(ctx context.Context) ([]model.Item, error) {
	var result []model.Item
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx)
		return cbErr
	})
	return result, err
}

// Upsert writes products with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Upsert(ctx context.Context, items []model.Item) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Upsert(ctx, items)
	})
}

// Count returns the number of products with circuit breaker protection.
func (r *ProductsRepositoryWithCircuitBreaker) Count(ctx context.Context) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ProductsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
