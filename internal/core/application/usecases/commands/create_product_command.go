package commands

import (
	"errors"

	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to list a new product. The
// acting user becomes its owner.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(actorID, "Mouse", "wireless", 19.99, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	actorID     int64
	name        string
	description string
	price       float64
	stock       int

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	actorID int64,
	name, description string,
	price float64,
	stock int,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkID("actorID", actorID),
		cmd.setName(name),
		cmd.setDescription(description),
		cmd.setPrice(price),
		cmd.setStock(stock),
	); err != nil {
		return CreateProductCommand{}, err
	}

	cmd.actorID = actorID
	return cmd, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ActorID() int64 {
	return c.actorID
}

func (c CreateProductCommand) Name() string {
	return c.name
}

func (c CreateProductCommand) Description() string {
	return c.description
}

func (c CreateProductCommand) Price() float64 {
	return c.price
}

func (c CreateProductCommand) Stock() int {
	return c.stock
}

func (c *CreateProductCommand) setName(name string) error {
	if err := checkLength("name", name, 1, product.MaxNameLength); err != nil {
		return err
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setDescription(description string) error {
	if err := checkLength("description", description, 0, product.MaxDescriptionLength); err != nil {
		return err
	}

	c.description = description
	return nil
}

func (c *CreateProductCommand) setPrice(price float64) error {
	if err := checkNonNegative("price", price); err != nil {
		return err
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if err := checkNonNegative("stock", stock); err != nil {
		return err
	}

	c.stock = stock
	return nil
}
