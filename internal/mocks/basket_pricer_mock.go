// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/guttosm/basket-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockBasketPricer struct {
	mock.Mock
}

func (m *MockBasketPricer) Quote(codes []string) (model.Quote, error) {
	args := m.Called(codes)
	return args.Get(0).(model.Quote), args.Error(1)
}

func (m *MockBasketPricer) Products() []model.Item {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.Item)
}

func (m *MockBasketPricer) Product(code string) (model.Item, error) {
	args := m.Called(code)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockBasketPricer) ReplaceCatalog(catalog service.Catalog) {
	m.Called(catalog)
}

func (m *MockBasketPricer) InvalidateCache() {
	m.Called()
}
