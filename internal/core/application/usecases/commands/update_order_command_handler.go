package commands

import (
	"context"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle lets only the user who placed the order change its total.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	if err := checkOrderOwner(ctx, orderRepo, cmd.OrderID(), cmd.ActorID()); err != nil {
		return err
	}

	if err := orderRepo.UpdateTotal(ctx, cmd.OrderID(), cmd.TotalPrice()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func checkOrderOwner(ctx context.Context, repo ports.OrderRepository, orderID, actorID int64) error {
	o, err := repo.Get(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return errs.NewObjectNotFoundError("order", orderID)
	}
	if !o.IsOwnedBy(actorID) {
		return ErrForbidden
	}

	return nil
}
