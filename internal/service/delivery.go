package service

import "github.com/shopspring/decimal"

// TieredDeliveryName identifies the tiered delivery strategy in quotes.
const TieredDeliveryName = "tiered"

// Default delivery tiers in USD.
var (
	DefaultFreeDeliveryThreshold   = decimal.RequireFromString("90.00")
	DefaultMediumDeliveryThreshold = decimal.RequireFromString("50.00")
	DefaultHighDeliveryCost        = decimal.RequireFromString("4.95")
	DefaultMediumDeliveryCost      = decimal.RequireFromString("2.95")
	DefaultFreeDeliveryCost        = decimal.Zero
)

// PricedBasket exposes the discounted subtotal to delivery strategies.
type PricedBasket interface {
	DiscountedTotal() decimal.Decimal
}

// DeliveryStrategy computes the delivery fee for a basket.
type DeliveryStrategy interface {
	Name() string
	DeliveryCost(basket PricedBasket) decimal.Decimal
}

// TierOption configures a TieredDelivery.
type TierOption func(*TieredDelivery)

// TieredDelivery charges by the bracket the discounted subtotal falls into.
// Thresholds are inclusive and checked from the highest down.
type TieredDelivery struct {
	FreeThreshold   decimal.Decimal
	MediumThreshold decimal.Decimal
	HighCost        decimal.Decimal
	MediumCost      decimal.Decimal
	FreeCost        decimal.Decimal
}

// NewTieredDelivery creates a TieredDelivery with the default tiers and the given options.
func NewTieredDelivery(opts ...TierOption) *TieredDelivery {
	d := &TieredDelivery{
		FreeThreshold:   DefaultFreeDeliveryThreshold,
		MediumThreshold: DefaultMediumDeliveryThreshold,
		HighCost:        DefaultHighDeliveryCost,
		MediumCost:      DefaultMediumDeliveryCost,
		FreeCost:        DefaultFreeDeliveryCost,
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithFreeDeliveryThreshold sets the subtotal from which FreeCost applies.
func WithFreeDeliveryThreshold(v decimal.Decimal) TierOption {
	return func(d *TieredDelivery) {
		d.FreeThreshold = v
	}
}

// WithMediumThreshold sets the subtotal from which MediumCost applies.
func WithMediumThreshold(v decimal.Decimal) TierOption {
	return func(d *TieredDelivery) {
		d.MediumThreshold = v
	}
}

// WithHighCost sets the fee below the medium threshold.
func WithHighCost(v decimal.Decimal) TierOption {
	return func(d *TieredDelivery) {
		d.HighCost = v
	}
}

// WithMediumCost sets the fee between the medium and free thresholds.
func WithMediumCost(v decimal.Decimal) TierOption {
	return func(d *TieredDelivery) {
		d.MediumCost = v
	}
}

// WithFreeCost sets the fee at or above the free threshold.
func WithFreeCost(v decimal.Decimal) TierOption {
	return func(d *TieredDelivery) {
		d.FreeCost = v
	}
}

// Name returns the strategy name.
func (d *TieredDelivery) Name() string {
	return TieredDeliveryName
}

// DeliveryCost returns the fee for the basket's discounted subtotal.
func (d *TieredDelivery) DeliveryCost(basket PricedBasket) decimal.Decimal {
	total := basket.DiscountedTotal()

	if total.GreaterThanOrEqual(d.FreeThreshold) {
		return d.FreeCost
	}
	if total.GreaterThanOrEqual(d.MediumThreshold) {
		return d.MediumCost
	}
	return d.HighCost
}
