package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand replaces the total of an order.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	orderID    int64
	totalPrice float64

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(actorID, orderID int64, totalPrice float64) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("orderID", orderID),
		cmd.setTotalPrice(totalPrice),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	cmd.actorID = actorID
	cmd.orderID = orderID
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) ActorID() int64 {
	return c.actorID
}

func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c UpdateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *UpdateOrderCommand) setTotalPrice(totalPrice float64) error {
	if err := checkNonNegative("totalPrice", totalPrice); err != nil {
		return err
	}

	c.totalPrice = totalPrice
	return nil
}
