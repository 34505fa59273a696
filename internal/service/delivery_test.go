package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTieredDelivery_DeliveryCost(t *testing.T) {
	delivery := NewTieredDelivery()

	tests := []struct {
		name       string
		discounted string
		expected   string
	}{
		{name: "empty basket", discounted: "0", expected: "4.95"},
		{name: "below medium threshold", discounted: "49.99", expected: "4.95"},
		{name: "exactly medium threshold", discounted: "50.00", expected: "2.95"},
		{name: "between thresholds", discounted: "75.00", expected: "2.95"},
		{name: "just below free threshold", discounted: "89.99", expected: "2.95"},
		{name: "exactly free threshold", discounted: "90.00", expected: "0"},
		{name: "above free threshold", discounted: "250.00", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMoney(t, tt.expected, delivery.DeliveryCost(fixedTotal(money(tt.discounted))))
		})
	}
}

func TestNewTieredDelivery_Options(t *testing.T) {
	delivery := NewTieredDelivery(
		WithFreeDeliveryThreshold(money("200")),
		WithMediumThreshold(money("100")),
		WithHighCost(money("10")),
		WithMediumCost(money("5")),
		WithFreeCost(money("1")),
	)

	assert.Equal(t, TieredDeliveryName, delivery.Name())
	assertMoney(t, "10", delivery.DeliveryCost(fixedTotal(money("99.99"))))
	assertMoney(t, "5", delivery.DeliveryCost(fixedTotal(money("100"))))
	assertMoney(t, "1", delivery.DeliveryCost(fixedTotal(money("200"))))
}

func TestTieredDelivery_EqualThresholdsPreferCheaperTier(t *testing.T) {
	delivery := NewTieredDelivery(
		WithFreeDeliveryThreshold(money("50")),
		WithMediumThreshold(money("50")),
	)

	assertMoney(t, "0", delivery.DeliveryCost(fixedTotal(money("50"))))
	assertMoney(t, "4.95", delivery.DeliveryCost(fixedTotal(money("49.99"))))
}

func TestNewTieredDelivery_Defaults(t *testing.T) {
	delivery := NewTieredDelivery()

	assert.True(t, delivery.FreeThreshold.Equal(decimal.NewFromInt(90)))
	assert.True(t, delivery.MediumThreshold.Equal(decimal.NewFromInt(50)))
	assertMoney(t, "4.95", delivery.HighCost)
	assertMoney(t, "2.95", delivery.MediumCost)
	assertMoney(t, "0", delivery.FreeCost)
}
