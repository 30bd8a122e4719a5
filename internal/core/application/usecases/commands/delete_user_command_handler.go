package commands

import (
	"context"

	"shop/internal/core/ports"
)

// DeleteUserCommandHandler counts the user's orders and deletes the account
// only when there are none. Both steps share one transaction.
type DeleteUserCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteUserCommandHandler(uowFactory UoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fails with ErrUserHasOrders while orders reference the user and
// with errs.ErrObjectNotFound when the user does not exist.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.ActorID() != cmd.UserID() {
		return ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userID := cmd.UserID()
	orders, err := uow.OrderRepository().CountAll(ctx, ports.OrderFilter{UserID: &userID})
	if err != nil {
		return err
	}
	if orders > 0 {
		return ErrUserHasOrders
	}

	if err = uow.UserRepository().Delete(ctx, userID); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
