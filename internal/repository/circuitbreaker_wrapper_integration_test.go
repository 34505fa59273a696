//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/basket-service/internal/circuitbreaker"
	"github.com/guttosm/basket-service/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductsRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrappedRepo := NewProductsRepositoryWithCircuitBreaker(NewProductsRepository(db), cb)

	err := wrappedRepo.Upsert(ctx, []model.Item{
		model.NewItem("G01", "Green Widget", decimal.RequireFromString("24.95")),
	})
	require.NoError(t, err)

	items, err := wrappedRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Green Widget", items[0].Name)

	count, err := wrappedRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	assert.Equal(t, circuitbreaker.StateClosed, wrappedRepo.GetCircuitBreaker().State())
}
