package service

import (
	"testing"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

// itemList is an ItemSource over a fixed slice.
type itemList []model.Item

func (l itemList) Items() []model.Item { return l }

func reds(n int) itemList {
	items := make(itemList, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, model.NewItem("R01", "Red Widget", money("32.95")))
	}
	return items
}

func TestPairDiscount_ApplyOffer(t *testing.T) {
	offer := NewRedWidgetHalfPrice()

	tests := []struct {
		name     string
		items    itemList
		expected string
	}{
		{name: "empty basket", items: nil, expected: "0"},
		{name: "single red widget", items: reds(1), expected: "0"},
		{name: "one pair rounds half away from zero", items: reds(2), expected: "16.48"},
		{name: "odd count charges extra at full price", items: reds(3), expected: "16.48"},
		{name: "two pairs", items: reds(4), expected: "32.95"},
		{name: "five red widgets", items: reds(5), expected: "32.95"},
		{
			name: "other products are ignored",
			items: itemList{
				model.NewItem("B01", "Blue Widget", money("7.95")),
				model.NewItem("B01", "Blue Widget", money("7.95")),
				model.NewItem("G01", "Green Widget", money("24.95")),
			},
			expected: "0",
		},
		{
			name: "interleaved matches still pair",
			items: itemList{
				model.NewItem("R01", "Red Widget", money("32.95")),
				model.NewItem("B01", "Blue Widget", money("7.95")),
				model.NewItem("R01", "Red Widget", money("32.95")),
			},
			expected: "16.48",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			discount := offer.ApplyOffer(tt.items)
			assertMoney(t, tt.expected, discount)
			assert.False(t, discount.IsNegative())
		})
	}
}

func TestPairDiscount_DoesNotMutateItems(t *testing.T) {
	items := itemList{
		model.NewItem("R01", "Red Widget", money("32.95")),
		model.NewItem("B01", "Blue Widget", money("7.95")),
		model.NewItem("R01", "Red Widget", money("32.95")),
	}
	before := append(itemList(nil), items...)

	NewRedWidgetHalfPrice().ApplyOffer(items)

	assert.Equal(t, before, items)
}

func TestPairDiscount_CustomConfiguration(t *testing.T) {
	offer := NewPairDiscount("green_third_off", "G01", money("0.3333"))

	assert.Equal(t, "green_third_off", offer.Name())
	assert.Equal(t, "G01", offer.ProductCode)

	items := itemList{
		model.NewItem("G01", "Green Widget", money("24.95")),
		model.NewItem("G01", "Green Widget", money("24.95")),
	}
	// 24.95 * 0.3333 = 8.315835
	assertMoney(t, "8.32", offer.ApplyOffer(items))
}

func TestNewRedWidgetHalfPrice(t *testing.T) {
	offer := NewRedWidgetHalfPrice()

	assert.Equal(t, RedWidgetHalfPriceName, offer.Name())
	assert.Equal(t, RedWidgetCode, offer.ProductCode)
	assertMoney(t, "0.5", offer.Fraction)
}
