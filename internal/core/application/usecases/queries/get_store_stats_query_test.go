package queries_test

import (
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStoreStatsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	users, products, orders := new(MockUserRepository), new(MockProductRepository), new(MockOrderRepository)
	users.On("CountAll", ctx, ports.UserFilter{}).Return(int64(3), nil).Once()
	products.On("CountAll", ctx, ports.ProductFilter{}).Return(int64(10), nil).Once()
	orders.On("CountAll", ctx, ports.OrderFilter{}).Return(int64(4), nil).Once()

	stats, err := queries.NewGetStoreStatsQueryHandler(users, products, orders).
		Handle(ctx, queries.NewGetStoreStatsQuery())

	require.NoError(t, err)
	assert.Equal(t, queries.StoreStats{Users: 3, Products: 10, Orders: 4}, stats)
	users.AssertExpectations(t)
	products.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestGetStoreStatsQueryHandler_Handle_StopsOnFirstError(t *testing.T) {
	ctx := t.Context()
	failure := errs.NewStorageFailureError("count products", assert.AnError)
	users, products, orders := new(MockUserRepository), new(MockProductRepository), new(MockOrderRepository)
	users.On("CountAll", ctx, ports.UserFilter{}).Return(int64(3), nil).Once()
	products.On("CountAll", ctx, ports.ProductFilter{}).Return(int64(0), failure).Once()

	stats, err := queries.NewGetStoreStatsQueryHandler(users, products, orders).
		Handle(ctx, queries.NewGetStoreStatsQuery())

	require.ErrorIs(t, err, errs.ErrStorageFailure)
	assert.Zero(t, stats)
	orders.AssertNotCalled(t, "CountAll")
}
