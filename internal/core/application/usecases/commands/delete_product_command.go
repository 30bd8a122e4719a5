package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct {
	actorID   int64
	productID int64

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(actorID, productID int64) (DeleteProductCommand, error) {
	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("productID", productID),
	); err != nil {
		return DeleteProductCommand{}, err
	}

	return DeleteProductCommand{
		actorID:   actorID,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ActorID() int64 {
	return c.actorID
}

func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}
