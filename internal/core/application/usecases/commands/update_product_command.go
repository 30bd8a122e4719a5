package commands

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand changes the price, the stock or both.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	actorID   int64
	productID int64
	price     *float64
	stock     *int

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(actorID, productID int64, price *float64, stock *int) (UpdateProductCommand, error) {
	cmd := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if price == nil && stock == nil {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("price or stock")
	}

	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("productID", productID),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	cmd.actorID = actorID
	cmd.productID = productID
	return cmd, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ActorID() int64 {
	return c.actorID
}

func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

func (c UpdateProductCommand) Price() *float64 {
	return c.price
}

func (c UpdateProductCommand) Stock() *int {
	return c.stock
}

func (c *UpdateProductCommand) setPrice(price *float64) error {
	if price == nil {
		return nil
	}
	if err := checkNonNegative("price", *price); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock *int) error {
	if stock == nil {
		return nil
	}
	if err := checkNonNegative("stock", *stock); err != nil {
		return err
	}

	c.stock = stock
	return nil
}
