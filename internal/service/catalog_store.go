package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/guttosm/basket-service/internal/metrics"
	"github.com/guttosm/basket-service/internal/repository"
	"github.com/rs/zerolog/log"
)

// ErrRepositoryNotConfigured is returned when no product store is configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ErrCatalogUnavailable wraps product store failures during a reload.
var ErrCatalogUnavailable = errors.New("catalog unavailable")

// Catalog sources reported by CatalogStore.
const (
	CatalogSourceConfig = "config"
	CatalogSourceSeed   = "seed"
	CatalogSourceStore  = "store"
)

// CatalogStore builds catalogs from the product store, seeding it from the
// configured products the first time it is found empty.
type CatalogStore struct {
	productsRepo repository.ProductsRepositoryInterface
	defaults     []model.Item
}

// NewCatalogStore creates a catalog store. A nil repository serves defaults only.
func NewCatalogStore(productsRepo repository.ProductsRepositoryInterface, defaults []model.Item) *CatalogStore {
	return &CatalogStore{
		productsRepo: productsRepo,
		defaults:     append([]model.Item(nil), defaults...),
	}
}

// Configured reports whether a product store backs this catalog.
func (s *CatalogStore) Configured() bool {
	return s.productsRepo != nil
}

// Load returns the current catalog and where it came from.
func (s *CatalogStore) Load(ctx context.Context) (*MapCatalog, string, error) {
	if s.productsRepo == nil {
		return NewCatalog(s.defaults...), CatalogSourceConfig, nil
	}

	count, err := s.productsRepo.Count(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("count products: %w", err)
	}

	if count == 0 {
		if err := s.productsRepo.Upsert(ctx, s.defaults); err != nil {
			return nil, "", fmt.Errorf("seed products: %w", err)
		}
		log.Info().Int("products", len(s.defaults)).Msg("Seeded empty product store")
		return NewCatalog(s.defaults...), CatalogSourceSeed, nil
	}

	items, err := s.productsRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list products: %w", err)
	}
	return NewCatalog(items...), CatalogSourceStore, nil
}

// LoadOrDefault is Load with a fallback to the configured products when the store fails.
func (s *CatalogStore) LoadOrDefault(ctx context.Context) *MapCatalog {
	catalog, source, err := s.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Product store unavailable, using configured catalog")
		catalog, source = NewCatalog(s.defaults...), CatalogSourceConfig
	}
	metrics.RecordCatalogLoad(source)
	log.Info().Str("source", source).Int("products", catalog.Len()).Msg("Catalog loaded")
	return catalog
}

// Reload reads the store again and installs the result in pricer.
// The pricer keeps its current catalog when the store cannot be read.
func (s *CatalogStore) Reload(ctx context.Context, pricer BasketPricer) (int, error) {
	if s.productsRepo == nil {
		return 0, ErrRepositoryNotConfigured
	}

	catalog, source, err := s.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}

	pricer.ReplaceCatalog(catalog)
	metrics.RecordCatalogLoad(source)
	log.Info().Str("source", source).Int("products", catalog.Len()).Msg("Catalog reloaded")
	return catalog.Len(), nil
}
