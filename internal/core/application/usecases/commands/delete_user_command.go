package commands

import (
	"errors"

	"shop/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand removes an account that has no orders.
type DeleteUserCommand struct {
	actorID int64
	userID  int64

	guard guard.ConstructorGuard
}

func NewDeleteUserCommand(actorID, userID int64) (DeleteUserCommand, error) {
	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("userID", userID),
	); err != nil {
		return DeleteUserCommand{}, err
	}

	return DeleteUserCommand{
		actorID: actorID,
		userID:  userID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

func (c DeleteUserCommand) ActorID() int64 {
	return c.actorID
}

func (c DeleteUserCommand) UserID() int64 {
	return c.userID
}
