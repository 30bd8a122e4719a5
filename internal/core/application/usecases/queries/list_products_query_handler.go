package queries

import (
	"context"

	"shop/internal/core/ports"
)

type ListProductsQueryHandler struct {
	products ports.ProductRepository
}

func NewListProductsQueryHandler(products ports.ProductRepository) ListProductsQueryHandler {
	return ListProductsQueryHandler{products: products}
}

func (h ListProductsQueryHandler) Handle(
	ctx context.Context,
	query ListProductsQuery,
) (ListProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsQueryResponse{}, err
	}

	products, err := h.products.ListAll(ctx, query.Filter(), query.Page())
	if err != nil {
		return ListProductsQueryResponse{}, err
	}

	total, err := h.products.CountAll(ctx, query.Filter())
	if err != nil {
		return ListProductsQueryResponse{}, err
	}

	return ListProductsQueryResponse{Products: products, Total: total}, nil
}
