package commands

import (
	"context"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

// UpdateProductCommandHandler applies the price and stock updates together.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	if err := checkProductOwner(ctx, productRepo, cmd.ProductID(), cmd.ActorID()); err != nil {
		return err
	}

	if price := cmd.Price(); price != nil {
		if err := productRepo.UpdatePrice(ctx, cmd.ProductID(), *price); err != nil {
			return err
		}
	}

	if stock := cmd.Stock(); stock != nil {
		if err := productRepo.UpdateStock(ctx, cmd.ProductID(), *stock); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// checkProductOwner loads the product and checks that actorID may manage it.
func checkProductOwner(ctx context.Context, repo ports.ProductRepository, productID, actorID int64) error {
	p, err := repo.Get(ctx, productID)
	if err != nil {
		return err
	}
	if p == nil {
		return errs.NewObjectNotFoundError("product", productID)
	}
	if !p.IsOwnedBy(actorID) {
		return ErrForbidden
	}

	return nil
}
