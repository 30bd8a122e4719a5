package commands

import (
	"context"

	"shop/internal/core/domain/model/product"
)

// CreateProductCommandHandler stores a product owned by the acting user.
// Name clashes that differ only in case are reported as conflicts by the
// repository.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ownerID := cmd.ActorID()
	created, err := uow.ProductRepository().Add(
		ctx,
		product.New(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock(), &ownerID),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
