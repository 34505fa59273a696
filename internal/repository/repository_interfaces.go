// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/basket-service/internal/domain/model"
)

// ProductsRepositoryInterface defines the interface for catalog product operations.
type ProductsRepositoryInterface interface {
	List(ctx context.Context) ([]model.Item, error)
	Upsert(ctx context.Context, items []model.Item) error
	Count(ctx context.Context) (int64, error)
}
