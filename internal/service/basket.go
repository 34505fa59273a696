package service

import (
	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

// Basket accumulates catalog items and prices them with the injected strategies.
//
// A Basket is owned by a single caller and is not safe for concurrent use.
// The catalog and strategies it references are read-only and may be shared.
type Basket struct {
	catalog   Catalog
	delivery  DeliveryStrategy
	discounts []DiscountStrategy
	items     []model.Item
}

// NewBasket creates an empty basket. Discounts are applied in the given order.
func NewBasket(catalog Catalog, delivery DeliveryStrategy, discounts ...DiscountStrategy) *Basket {
	return &Basket{
		catalog:   catalog,
		delivery:  delivery,
		discounts: discounts,
	}
}

// Add resolves code in the catalog and appends the item.
// An unknown code returns a *ProductNotFoundError and leaves the basket untouched.
func (b *Basket) Add(code string) error {
	item, err := b.catalog.Lookup(code)
	if err != nil {
		return err
	}
	b.items = append(b.items, item)
	return nil
}

// Items returns a copy of the basket contents in insertion order.
func (b *Basket) Items() []model.Item {
	items := make([]model.Item, len(b.items))
	copy(items, b.items)
	return items
}

// Subtotal returns the unrounded sum of item prices.
func (b *Basket) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range b.items {
		subtotal = subtotal.Add(item.Price)
	}
	return subtotal
}

// TotalDiscount returns the sum of every configured offer.
func (b *Basket) TotalDiscount() decimal.Decimal {
	discount := decimal.Zero
	for _, strategy := range b.discounts {
		discount = discount.Add(strategy.ApplyOffer(b))
	}
	return discount
}

// DiscountedTotal returns the subtotal after offers, before delivery.
func (b *Basket) DiscountedTotal() decimal.Decimal {
	return b.Subtotal().Sub(b.TotalDiscount())
}

// DeliveryCost returns the delivery fee for the discounted subtotal.
func (b *Basket) DeliveryCost() decimal.Decimal {
	return b.delivery.DeliveryCost(b)
}

// Total returns discounted subtotal plus delivery, rounded half away from zero to cents.
func (b *Basket) Total() decimal.Decimal {
	return b.DiscountedTotal().Add(b.DeliveryCost()).Round(2)
}

// Quote returns the full price breakdown. Offers are evaluated once each.
func (b *Basket) Quote() model.Quote {
	subtotal := b.Subtotal()

	applied := make([]model.AppliedDiscount, 0, len(b.discounts))
	discount := decimal.Zero
	for _, strategy := range b.discounts {
		amount := strategy.ApplyOffer(b)
		discount = discount.Add(amount)
		applied = append(applied, model.AppliedDiscount{Offer: strategy.Name(), Amount: amount})
	}

	discounted := subtotal.Sub(discount)
	delivery := b.delivery.DeliveryCost(fixedTotal(discounted))

	return model.Quote{
		Items:              b.Items(),
		Subtotal:           subtotal,
		Discounts:          applied,
		Discount:           discount,
		DiscountedSubtotal: discounted,
		DeliveryMethod:     b.delivery.Name(),
		Delivery:           delivery,
		Total:              discounted.Add(delivery).Round(2),
	}
}

// fixedTotal is a PricedBasket whose discounted subtotal is already known.
type fixedTotal decimal.Decimal

func (f fixedTotal) DiscountedTotal() decimal.Decimal {
	return decimal.Decimal(f)
}
