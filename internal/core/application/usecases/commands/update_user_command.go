package commands

import (
	"errors"

	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand changes the username, the email or both. Nil fields
// are left untouched, but at least one must be set.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	actorID  int64
	userID   int64
	username *string
	email    *string

	guard guard.ConstructorGuard
}

func NewUpdateUserCommand(actorID, userID int64, username, email *string) (UpdateUserCommand, error) {
	cmd := UpdateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if username == nil && email == nil {
		return UpdateUserCommand{}, errs.NewValueIsRequiredError("username or email")
	}

	if err := errors.Join(
		checkID("actorID", actorID),
		checkID("userID", userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
	); err != nil {
		return UpdateUserCommand{}, err
	}

	cmd.actorID = actorID
	cmd.userID = userID
	return cmd, nil
}

func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// ActorID is the authenticated user performing the change.
func (c UpdateUserCommand) ActorID() int64 {
	return c.actorID
}

func (c UpdateUserCommand) UserID() int64 {
	return c.userID
}

// Username returns the new username, or nil when it is not changing.
func (c UpdateUserCommand) Username() *string {
	return c.username
}

// Email returns the new email, or nil when it is not changing.
func (c UpdateUserCommand) Email() *string {
	return c.email
}

func (c *UpdateUserCommand) setUsername(username *string) error {
	if username == nil {
		return nil
	}
	if err := checkLength("username", *username, MinUsernameLength, user.MaxUsernameLength); err != nil {
		return err
	}

	c.username = username
	return nil
}

func (c *UpdateUserCommand) setEmail(email *string) error {
	if email == nil {
		return nil
	}
	if err := validateEmail(*email); err != nil {
		return err
	}

	c.email = email
	return nil
}
