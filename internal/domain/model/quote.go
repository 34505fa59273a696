package model

import "github.com/shopspring/decimal"

// AppliedDiscount is the amount a single offer took off a basket.
type AppliedDiscount struct {
	// Offer is the name of the discount strategy
	Offer string `json:"offer" example:"red_widget_half_price"`
	// Amount is the discount contributed by the offer
	Amount decimal.Decimal `json:"amount" example:"16.48"`
}

// Quote is the full price breakdown of a basket.
//
// Subtotal and DiscountedSubtotal keep full precision; only Total is rounded.
type Quote struct {
	Items              []Item            `json:"items"`
	Subtotal           decimal.Decimal   `json:"subtotal"`
	Discounts          []AppliedDiscount `json:"discounts"`
	Discount           decimal.Decimal   `json:"discount"`
	DiscountedSubtotal decimal.Decimal   `json:"discounted_subtotal"`
	DeliveryMethod     string            `json:"delivery_method"`
	Delivery           decimal.Decimal   `json:"delivery"`
	Total              decimal.Decimal   `json:"total"`
}

// ItemCount returns the number of items in the quoted basket.
func (q Quote) ItemCount() int {
	return len(q.Items)
}
