package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/guttosm/basket-service/internal/metrics"
	"github.com/guttosm/basket-service/internal/service/cache"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// cacheKeySeparator joins product codes into a cache key; it cannot appear in a code.
const cacheKeySeparator = "\x1f"

// DefaultCatalogItems returns the Acme Widget Co. product range.
func DefaultCatalogItems() []model.Item {
	return []model.Item{
		model.NewItem("R01", "Red Widget", decimal.RequireFromString("32.95")),
		model.NewItem("G01", "Green Widget", decimal.RequireFromString("24.95")),
		model.NewItem("B01", "Blue Widget", decimal.RequireFromString("7.95")),
	}
}

// BasketPricer defines the interface for basket pricing operations.
type BasketPricer interface {
	// Quote prices the basket built from codes, in order.
	Quote(codes []string) (model.Quote, error)
	Products() []model.Item
	Product(code string) (model.Item, error)
	// ReplaceCatalog swaps the catalog and drops cached quotes.
	ReplaceCatalog(catalog Catalog)
	InvalidateCache()
}

// Option configures a PricingService.
type Option func(*PricingService)

// PricingService implements BasketPricer. Every quote is computed on a fresh Basket,
// so the shared state is limited to the catalog reference and the quote cache.
// generation advances on every catalog swap or cache flush; a quote computed
// under an older generation is returned but never cached.
type PricingService struct {
	mu         sync.RWMutex
	generation uint64
	catalog    Catalog
	delivery   DeliveryStrategy
	discounts  []DiscountStrategy
	cache      cache.Cache
}

// NewPricingService creates a PricingService with the default catalog, the red widget
// offer and tiered delivery, then applies opts.
func NewPricingService(opts ...Option) *PricingService {
	s := &PricingService{
		catalog:   NewCatalog(DefaultCatalogItems()...),
		delivery:  NewTieredDelivery(),
		discounts: []DiscountStrategy{NewRedWidgetHalfPrice()},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCatalog sets the catalog products are resolved against.
func WithCatalog(catalog Catalog) Option {
	return func(s *PricingService) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithDelivery sets the delivery strategy.
func WithDelivery(delivery DeliveryStrategy) Option {
	return func(s *PricingService) {
		if delivery != nil {
			s.delivery = delivery
		}
	}
}

// WithDiscounts replaces the configured offers. Passing none disables offers.
func WithDiscounts(discounts ...DiscountStrategy) Option {
	return func(s *PricingService) {
		s.discounts = append([]DiscountStrategy(nil), discounts...)
	}
}

// WithCache enables quote caching with the specified capacity and TTL.
func WithCache(capacity int, ttl time.Duration) Option {
	return func(s *PricingService) {
		if capacity > 0 {
			s.cache = newTTLCache(capacity, ttl)
		}
	}
}

// WithCacheInterface allows injecting a custom cache implementation.
func WithCacheInterface(c cache.Cache) Option {
	return func(s *PricingService) {
		s.cache = c
	}
}

// Quote builds a basket from codes and returns its price breakdown.
// An unknown code fails the whole quote with a wrapped *ProductNotFoundError.
func (s *PricingService) Quote(codes []string) (model.Quote, error) {
	start := time.Now()
	key := strings.Join(codes, cacheKeySeparator)

	s.mu.RLock()
	catalog := s.catalog
	c := s.cache
	gen := s.generation
	s.mu.RUnlock()

	if c != nil {
		if quote, ok := c.Get(key); ok {
			metrics.RecordBasketQuote(time.Since(start), "cached")
			return quote, nil
		}
	}

	basket := NewBasket(catalog, s.delivery, s.discounts...)
	for _, code := range codes {
		if err := basket.Add(code); err != nil {
			metrics.RecordBasketQuote(time.Since(start), "product_not_found")
			log.Warn().Str("product_code", code).Int("items", len(codes)).Msg("Rejected basket with unknown product")
			return model.Quote{}, fmt.Errorf("quote basket: %w", err)
		}
	}

	quote := basket.Quote()

	if c != nil {
		s.storeQuote(c, gen, key, quote)
	}

	metrics.RecordBasketQuote(time.Since(start), "success")
	metrics.ObserveQuoteTotal(quote.Total.InexactFloat64())
	log.Debug().
		Int("items", quote.ItemCount()).
		Str("subtotal", quote.Subtotal.String()).
		Str("discount", quote.Discount.String()).
		Str("delivery", quote.Delivery.String()).
		Str("total", quote.Total.StringFixed(2)).
		Msg("Basket quoted")

	return quote, nil
}

// Products returns the catalog sorted by code.
func (s *PricingService) Products() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Items()
}

// Product looks up a single product.
func (s *PricingService) Product(code string) (model.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog.Lookup(code)
}

// storeQuote caches quote unless the catalog or cache changed since gen was read.
// The read lock is held across Set so a concurrent swap cannot slip in between.
func (s *PricingService) storeQuote(c cache.Cache, gen uint64, key string, quote model.Quote) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.generation != gen {
		log.Debug().Uint64("generation", gen).Msg("Discarded quote computed against a replaced catalog")
		return
	}
	c.Set(key, quote)
}

// ReplaceCatalog swaps the catalog and invalidates cached quotes.
func (s *PricingService) ReplaceCatalog(catalog Catalog) {
	if catalog == nil {
		return
	}

	s.mu.Lock()
	s.catalog = catalog
	s.generation++
	c := s.cache
	if c != nil {
		c.Clear()
	}
	s.mu.Unlock()

	metrics.SetCatalogProducts(len(catalog.Items()))
}

// InvalidateCache clears the quote cache.
func (s *PricingService) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if s.cache != nil {
		s.cache.Clear()
	}
}

// Close stops the quote cache's background sweep.
func (s *PricingService) Close() {
	s.mu.RLock()
	c := s.cache
	s.mu.RUnlock()

	if c != nil {
		c.Stop()
	}
}
