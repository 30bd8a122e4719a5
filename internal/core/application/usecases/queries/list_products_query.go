package queries

import (
	"errors"

	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery retrieves one page of products. The price bounds are
// inclusive.
type ListProductsQuery struct {
	filter ports.ProductFilter
	page   ports.Page

	guard guard.ConstructorGuard
}

// NewListProductsQuery rejects a price range whose lower bound exceeds the
// upper one.
func NewListProductsQuery(page, perPage int, filter ports.ProductFilter) (ListProductsQuery, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return ListProductsQuery{}, errs.NewValueIsOutOfRangeError(
			"minPrice", *filter.MinPrice, 0, *filter.MaxPrice,
		)
	}

	return ListProductsQuery{
		filter: filter,
		page:   newPage(page, perPage),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) Filter() ports.ProductFilter {
	return q.filter
}

func (q ListProductsQuery) Page() ports.Page {
	return q.page
}

type ListProductsQueryResponse struct {
	Products []*product.Product
	Total    int64
}
