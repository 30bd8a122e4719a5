package queries_test

import (
	"errors"
	"testing"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/model/product"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewListUsersQuery_Paging(t *testing.T) {
	tests := []struct {
		name    string
		page    int
		perPage int
		want    ports.Page
	}{
		{"defaults", 0, 0, ports.Page{Offset: 0, Limit: queries.DefaultPerPage}},
		{"third page", 3, 10, ports.Page{Offset: 20, Limit: 10}},
		{"capped", 2, 500, ports.Page{Offset: queries.MaxPerPage, Limit: queries.MaxPerPage}},
		{"negative page", -4, 5, ports.Page{Offset: 0, Limit: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := queries.NewListUsersQuery(tt.page, tt.perPage, ports.UserFilter{})
			assert.Equal(t, tt.want, query.Page())
		})
	}
}

func TestListUsersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	filter := ports.UserFilter{UsernameContains: "al"}
	query := queries.NewListUsersQuery(1, 2, filter)

	page := []*user.User{{ID: ptr(int64(1))}, {ID: ptr(int64(2))}}
	repo := new(MockUserRepository)
	mock.InOrder(
		repo.On("ListAll", ctx, filter, ports.Page{Offset: 0, Limit: 2}).Return(page, nil).Once(),
		repo.On("CountAll", ctx, filter).Return(int64(5), nil).Once(),
	)

	result, err := queries.NewListUsersQueryHandler(repo).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, page, result.Users)
	assert.Equal(t, int64(5), result.Total)
	repo.AssertExpectations(t)
}

func TestListUsersQueryHandler_Handle_ListError(t *testing.T) {
	ctx := t.Context()
	listErr := errors.New("list error")

	repo := new(MockUserRepository)
	repo.On("ListAll", ctx, mock.Anything, mock.Anything).Return(nil, listErr).Once()

	_, err := queries.NewListUsersQueryHandler(repo).Handle(ctx, queries.NewListUsersQuery(1, 10, ports.UserFilter{}))
	require.ErrorIs(t, err, listErr)
	repo.AssertNotCalled(t, "CountAll", mock.Anything, mock.Anything)
}

func TestNewListProductsQuery_InvertedPriceRange(t *testing.T) {
	_, err := queries.NewListProductsQuery(1, 10, ports.ProductFilter{MinPrice: ptr(10.0), MaxPrice: ptr(5.0)})
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewListProductsQuery(1, 10, ports.ProductFilter{MinPrice: ptr(5.0), MaxPrice: ptr(5.0)})
	require.NoError(t, err)
}

func TestListProductsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	filter := ports.ProductFilter{NameContains: "mou", OwnerID: ptr(int64(7))}
	query, err := queries.NewListProductsQuery(2, 1, filter)
	require.NoError(t, err)

	page := []*product.Product{{ID: ptr(int64(9)), Name: "Mouse2"}}
	repo := new(MockProductRepository)
	repo.On("ListAll", ctx, filter, ports.Page{Offset: 1, Limit: 1}).Return(page, nil).Once()
	repo.On("CountAll", ctx, filter).Return(int64(2), nil).Once()

	result, err := queries.NewListProductsQueryHandler(repo).Handle(ctx, query)
	require.NoError(t, err)
	assert.Equal(t, page, result.Products)
	assert.Equal(t, int64(2), result.Total)
	repo.AssertExpectations(t)
}

func TestListOrdersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	filter := ports.OrderFilter{UserID: ptr(int64(4))}
	query := queries.NewListOrdersQuery(1, 20, filter)

	repo := new(MockOrderRepository)
	repo.On("ListAll", ctx, filter, ports.Page{Offset: 0, Limit: 20}).Return([]*order.Order{}, nil).Once()
	repo.On("CountAll", ctx, filter).Return(int64(0), nil).Once()

	result, err := queries.NewListOrdersQueryHandler(repo).Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, result.Orders)
	assert.Zero(t, result.Total)
	repo.AssertExpectations(t)
}

func TestListQueries_NotConstructedViaConstructor(t *testing.T) {
	ctx := t.Context()

	_, err := queries.NewListUsersQueryHandler(new(MockUserRepository)).Handle(ctx, queries.ListUsersQuery{})
	require.ErrorIs(t, err, queries.ErrListUsersQueryIsNotConstructed)

	_, err = queries.NewListProductsQueryHandler(new(MockProductRepository)).Handle(ctx, queries.ListProductsQuery{})
	require.ErrorIs(t, err, queries.ErrListProductsQueryIsNotConstructed)

	_, err = queries.NewListOrdersQueryHandler(new(MockOrderRepository)).Handle(ctx, queries.ListOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrListOrdersQueryIsNotConstructed)
}
