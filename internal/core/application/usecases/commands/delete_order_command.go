package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

type DeleteOrderCommand struct {
	actorID int64
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actorID, orderID int64) (DeleteOrderCommand, error) {
	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("orderID", orderID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		actorID: actorID,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) ActorID() int64 {
	return c.actorID
}

func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}
