package ports

import (
	"context"

	"shop/internal/core/domain/model/product"
)

// ProductFilter narrows product listings. Nil pointers and empty strings do
// not filter.
type ProductFilter struct {
	NameContains string
	MinPrice     *float64
	MaxPrice     *float64
	OwnerID      *int64
}

// ProductRepository defines the persistence contract for products.
// Names are compared case-insensitively everywhere.
type ProductRepository interface {
	// Add rejects a product with a preset ID; the store assigns it.
	Add(ctx context.Context, p *product.Product) (*product.Product, error)
	Delete(ctx context.Context, id int64) error
	UpdatePrice(ctx context.Context, id int64, price float64) error
	UpdateStock(ctx context.Context, id int64, stock int) error

	Get(ctx context.Context, id int64) (*product.Product, error)
	GetByName(ctx context.Context, name string) (*product.Product, error)

	ListAll(ctx context.Context, filter ProductFilter, page Page) ([]*product.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
}
