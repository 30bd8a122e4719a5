package queries

import (
	"context"
	"fmt"

	"shop/internal/core/ports"
)

type GetStoreStatsQuery struct{}

func NewGetStoreStatsQuery() GetStoreStatsQuery {
	return GetStoreStatsQuery{}
}

// StoreStats holds unfiltered row counts.
type StoreStats struct {
	Users    int64
	Products int64
	Orders   int64
}

type GetStoreStatsQueryHandler struct {
	users    ports.UserRepository
	products ports.ProductRepository
	orders   ports.OrderRepository
}

func NewGetStoreStatsQueryHandler(
	users ports.UserRepository,
	products ports.ProductRepository,
	orders ports.OrderRepository,
) GetStoreStatsQueryHandler {
	return GetStoreStatsQueryHandler{users: users, products: products, orders: orders}
}

// Handle counts each table separately, so the totals are not a consistent
// snapshot under concurrent writes.
func (h GetStoreStatsQueryHandler) Handle(ctx context.Context, _ GetStoreStatsQuery) (StoreStats, error) {
	var (
		stats StoreStats
		err   error
	)

	if stats.Users, err = h.users.CountAll(ctx, ports.UserFilter{}); err != nil {
		return StoreStats{}, fmt.Errorf("count users: %w", err)
	}
	if stats.Products, err = h.products.CountAll(ctx, ports.ProductFilter{}); err != nil {
		return StoreStats{}, fmt.Errorf("count products: %w", err)
	}
	if stats.Orders, err = h.orders.CountAll(ctx, ports.OrderFilter{}); err != nil {
		return StoreStats{}, fmt.Errorf("count orders: %w", err)
	}

	return stats, nil
}
