package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The user lookup and the insert share one transaction, so an order is
// never written for a user that does not exist.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(actorID, actorID, 15)
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // the user is gone
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Users may only place orders for themselves.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.ActorID() != cmd.UserID() {
		return nil, ErrForbidden
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.UserRepository().Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, errs.NewObjectNotFoundError("user", cmd.UserID())
	}

	created, err := uow.OrderRepository().Add(ctx, order.New(cmd.UserID(), cmd.TotalPrice()))
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
