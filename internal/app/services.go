// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/basket-service/config"
	"github.com/guttosm/basket-service/internal/service"
	"github.com/shopspring/decimal"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Pricer *service.PricingService
}

// InitializeServices builds the pricing service from the pricing and cache
// configuration. catalog replaces the configured products when non-nil.
func InitializeServices(pricing config.PricingConfig, cacheCfg config.CacheConfig, catalog service.Catalog) *ServiceComponents {
	if catalog == nil {
		catalog = service.NewCatalog(pricing.Catalog...)
	}

	opts := []service.Option{
		service.WithCatalog(catalog),
		service.WithDelivery(newDelivery(pricing.Delivery)),
		service.WithDiscounts(newDiscounts(pricing)...),
	}

	if cacheCfg.Size > 0 {
		opts = append(opts, service.WithCache(cacheCfg.Size, cacheCfg.TTL))
	}

	return &ServiceComponents{
		Pricer: service.NewPricingService(opts...),
	}
}

// newDelivery applies the configured tiers as given. Defaults for unset
// variables are resolved by config.Load, so zero thresholds mean free delivery.
func newDelivery(cfg config.DeliveryConfig) *service.TieredDelivery {
	return service.NewTieredDelivery(
		service.WithFreeDeliveryThreshold(cfg.FreeThreshold),
		service.WithMediumThreshold(cfg.MediumThreshold),
		service.WithHighCost(cfg.HighCost),
		service.WithMediumCost(cfg.MediumCost),
		service.WithFreeCost(cfg.FreeCost),
	)
}

func newDiscounts(cfg config.PricingConfig) []service.DiscountStrategy {
	if !cfg.OffersEnabled || cfg.OfferProductCode == "" {
		return nil
	}

	half := decimal.NewFromFloat(0.5)
	if cfg.OfferProductCode == service.RedWidgetCode && cfg.OfferFraction.Equal(half) {
		return []service.DiscountStrategy{service.NewRedWidgetHalfPrice()}
	}

	name := fmt.Sprintf("Buy one %s, get the second %s%% off",
		cfg.OfferProductCode, cfg.OfferFraction.Mul(decimal.NewFromInt(100)).String())
	return []service.DiscountStrategy{service.NewPairDiscount(name, cfg.OfferProductCode, cfg.OfferFraction)}
}
