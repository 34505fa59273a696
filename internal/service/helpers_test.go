package service

import (
	"testing"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// money parses a literal amount, failing the test on bad input.
func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertMoney compares amounts numerically so "2.90" equals "2.9".
func assertMoney(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, money(expected).Equal(actual), "expected %s, got %s", expected, actual.String())
}

// widgetCatalog returns the Acme widget catalog used across tests.
func widgetCatalog() *MapCatalog {
	return NewCatalog(
		model.NewItem("B01", "Blue Widget", money("7.95")),
		model.NewItem("G01", "Green Widget", money("24.95")),
		model.NewItem("R01", "Red Widget", money("32.95")),
	)
}

// newWidgetBasket returns an empty basket with the default offer and delivery tiers.
func newWidgetBasket() *Basket {
	return NewBasket(widgetCatalog(), NewTieredDelivery(), NewRedWidgetHalfPrice())
}
