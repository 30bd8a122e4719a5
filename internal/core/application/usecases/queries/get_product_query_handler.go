package queries

import (
	"context"

	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

type GetProductQueryHandler struct {
	products ports.ProductRepository
}

func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.NewObjectNotFoundError("product", query.ProductID())
	}

	return found, nil
}
