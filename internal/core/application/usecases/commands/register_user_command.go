package commands

import (
	"errors"
	"net/mail"

	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

const (
	MinUsernameLength = 3
	MinPasswordLength = 8
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to open a new account.
// The password is kept in plain text only until the handler hashes it.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand("jane_doe", "jane@example.com", "s3cret-pass")
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates the username length, the email address
// and the password length.
func NewRegisterUserCommand(username, email, password string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) Username() string {
	return c.username
}

func (c RegisterUserCommand) Email() string {
	return c.email
}

func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if err := checkLength("username", username, MinUsernameLength, user.MaxUsernameLength); err != nil {
		return err
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if err := checkLength("password", password, MinPasswordLength, 0); err != nil {
		return err
	}

	c.password = password
	return nil
}

func validateEmail(email string) error {
	if err := checkLength("email", email, 1, user.MaxEmailLength); err != nil {
		return err
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	return nil
}
