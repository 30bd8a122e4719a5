package ports

import (
	"context"

	"shop/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. A nil UserID lists orders of every user.
type OrderFilter struct {
	UserID *int64
}

// OrderRepository defines the persistence contract for orders.
type OrderRepository interface {
	// Add persists a new order. The returned order carries the assigned ID
	// and the server-assigned CreatedAt. An order with a preset ID is rejected.
	Add(ctx context.Context, o *order.Order) (*order.Order, error)

	// Delete removes the order. Fails with errs.ErrObjectNotFound when no row matches.
	Delete(ctx context.Context, id int64) error

	// UpdateTotal replaces the order total. Fails with errs.ErrObjectNotFound
	// when no row matches.
	UpdateTotal(ctx context.Context, id int64, total float64) error

	Get(ctx context.Context, id int64) (*order.Order, error)

	ListAll(ctx context.Context, filter OrderFilter, page Page) ([]*order.Order, error)
	CountAll(ctx context.Context, filter OrderFilter) (int64, error)
}
