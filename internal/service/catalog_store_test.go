package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/guttosm/basket-service/internal/mocks"
	"github.com/guttosm/basket-service/internal/service"
)

func TestCatalogStore_Load(t *testing.T) {
	defaults := service.DefaultCatalogItems()
	stored := []model.Item{
		model.NewItem("B01", "Blue Widget", decimal.RequireFromString("6.50")),
		model.NewItem("Y01", "Yellow Widget", decimal.RequireFromString("12.00")),
	}

	tests := []struct {
		name           string
		setupMock      func(*mocks.MockProductsRepositoryInterface)
		expectedSource string
		expectedCodes  []string
		expectedError  string
	}{
		{
			name: "empty store is seeded with defaults",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Count", mock.Anything).Return(int64(0), nil)
				m.On("Upsert", mock.Anything, defaults).Return(nil)
			},
			expectedSource: service.CatalogSourceSeed,
			expectedCodes:  []string{"B01", "G01", "R01"},
		},
		{
			name: "populated store is listed",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Count", mock.Anything).Return(int64(2), nil)
				m.On("List", mock.Anything).Return(stored, nil)
			},
			expectedSource: service.CatalogSourceStore,
			expectedCodes:  []string{"B01", "Y01"},
		},
		{
			name: "count failure",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Count", mock.Anything).Return(int64(0), errors.New("timeout"))
			},
			expectedError: "count products: timeout",
		},
		{
			name: "seed failure",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Count", mock.Anything).Return(int64(0), nil)
				m.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("read only"))
			},
			expectedError: "seed products: read only",
		},
		{
			name: "list failure",
			setupMock: func(m *mocks.MockProductsRepositoryInterface) {
				m.On("Count", mock.Anything).Return(int64(3), nil)
				m.On("List", mock.Anything).Return(nil, errors.New("cursor closed"))
			},
			expectedError: "list products: cursor closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductsRepositoryInterface)
			tt.setupMock(repo)

			store := service.NewCatalogStore(repo, defaults)
			catalog, source, err := store.Load(context.Background())

			if tt.expectedError != "" {
				assert.EqualError(t, err, tt.expectedError)
				assert.Nil(t, catalog)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedSource, source)
				assert.Equal(t, tt.expectedCodes, codesOf(catalog.Items()))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestCatalogStore_WithoutRepository(t *testing.T) {
	store := service.NewCatalogStore(nil, service.DefaultCatalogItems())
	assert.False(t, store.Configured())

	catalog, source, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.CatalogSourceConfig, source)
	assert.Equal(t, 3, catalog.Len())

	_, err = store.Reload(context.Background(), service.NewPricingService())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}

func TestCatalogStore_LoadOrDefault(t *testing.T) {
	repo := new(mocks.MockProductsRepositoryInterface)
	repo.On("Count", mock.Anything).Return(int64(0), errors.New("no reachable servers"))

	store := service.NewCatalogStore(repo, service.DefaultCatalogItems())
	catalog := store.LoadOrDefault(context.Background())

	assert.True(t, store.Configured())
	assert.Equal(t, []string{"B01", "G01", "R01"}, codesOf(catalog.Items()))
}

func TestCatalogStore_Reload(t *testing.T) {
	t.Run("installs the stored catalog", func(t *testing.T) {
		repo := new(mocks.MockProductsRepositoryInterface)
		repo.On("Count", mock.Anything).Return(int64(1), nil)
		repo.On("List", mock.Anything).Return([]model.Item{
			model.NewItem("R01", "Red Widget", decimal.RequireFromString("40.00")),
		}, nil)

		pricer := new(mocks.MockBasketPricer)
		pricer.On("ReplaceCatalog", mock.MatchedBy(func(c service.Catalog) bool {
			return len(c.Items()) == 1
		})).Return()

		n, err := service.NewCatalogStore(repo, nil).Reload(context.Background(), pricer)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		pricer.AssertExpectations(t)
	})

	t.Run("keeps the current catalog on failure", func(t *testing.T) {
		repo := new(mocks.MockProductsRepositoryInterface)
		repo.On("Count", mock.Anything).Return(int64(0), errors.New("circuit breaker is open"))

		pricer := new(mocks.MockBasketPricer)

		_, err := service.NewCatalogStore(repo, nil).Reload(context.Background(), pricer)
		assert.ErrorIs(t, err, service.ErrCatalogUnavailable)
		pricer.AssertNotCalled(t, "ReplaceCatalog", mock.Anything)
	})
}

func codesOf(items []model.Item) []string {
	codes := make([]string, len(items))
	for i, item := range items {
		codes[i] = item.Code
	}
	return codes
}
