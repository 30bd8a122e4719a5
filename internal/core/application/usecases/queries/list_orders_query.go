package queries

import (
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves one page of orders, optionally only those of a
// single user.
type ListOrdersQuery struct {
	filter ports.OrderFilter
	page   ports.Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(page, perPage int, filter ports.OrderFilter) ListOrdersQuery {
	return ListOrdersQuery{
		filter: filter,
		page:   newPage(page, perPage),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ports.OrderFilter {
	return q.filter
}

func (q ListOrdersQuery) Page() ports.Page {
	return q.page
}

type ListOrdersQueryResponse struct {
	Orders []*order.Order
	Total  int64
}
