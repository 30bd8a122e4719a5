package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place an order for a user.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actorID, actorID, 42.50)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %d placed at %s", *created.ID, created.CreatedAt)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actorID    int64
	userID     int64
	totalPrice float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates both identifiers and requires a
// non-negative total.
func NewCreateOrderCommand(actorID, userID int64, totalPrice float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("userID", userID),
		orderCommand.setTotalPrice(totalPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	orderCommand.actorID = actorID
	orderCommand.userID = userID
	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ActorID() int64 {
	return c.actorID
}

// UserID returns the user the order is placed for.
func (c CreateOrderCommand) UserID() int64 {
	return c.userID
}

func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	if err := checkNonNegative("totalPrice", totalPrice); err != nil {
		return err
	}

	c.totalPrice = totalPrice
	return nil
}
