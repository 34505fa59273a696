package service

import (
	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/shopspring/decimal"
)

const (
	// RedWidgetCode is the product code the default offer targets.
	RedWidgetCode = "R01"
	// RedWidgetHalfPriceName identifies the default offer in quotes and logs.
	RedWidgetHalfPriceName = "red_widget_half_price"
)

// ItemSource exposes the ordered basket contents to discount strategies.
type ItemSource interface {
	Items() []model.Item
}

// DiscountStrategy computes the total discount one offer contributes to a basket.
// Implementations must be pure functions of the basket contents.
type DiscountStrategy interface {
	Name() string
	ApplyOffer(basket ItemSource) decimal.Decimal
}

// PairDiscount takes Fraction off every second unit of ProductCode.
type PairDiscount struct {
	name        string
	ProductCode string
	Fraction    decimal.Decimal
}

// NewPairDiscount creates a PairDiscount named name for productCode.
func NewPairDiscount(name, productCode string, fraction decimal.Decimal) *PairDiscount {
	return &PairDiscount{
		name:        name,
		ProductCode: productCode,
		Fraction:    fraction,
	}
}

// NewRedWidgetHalfPrice creates the "buy one red widget, get the second half price" offer.
func NewRedWidgetHalfPrice() *PairDiscount {
	return NewPairDiscount(RedWidgetHalfPriceName, RedWidgetCode, decimal.NewFromFloat(0.5))
}

// Name returns the offer name.
func (d *PairDiscount) Name() string {
	return d.name
}

// ApplyOffer returns round(unitPrice * fraction * pairs, 2) over the matching items.
func (d *PairDiscount) ApplyOffer(basket ItemSource) decimal.Decimal {
	matches := d.matching(basket.Items())
	if len(matches) < 2 {
		return decimal.Zero
	}

	pairs := decimal.NewFromInt(int64(len(matches) / 2))
	return matches[0].Price.Mul(d.Fraction).Mul(pairs).Round(2)
}

// matching filters items down to the target code, keeping basket order.
func (d *PairDiscount) matching(items []model.Item) []model.Item {
	matches := make([]model.Item, 0, len(items))
	for _, item := range items {
		if item.Code == d.ProductCode {
			matches = append(matches, item)
		}
	}
	return matches
}
