// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockProductsRepositoryInterface struct {
	mock.Mock
}

func (m *MockProductsRepositoryInterface) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockProductsRepositoryInterface) Upsert(ctx context.Context, items []model.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockProductsRepositoryInterface) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
