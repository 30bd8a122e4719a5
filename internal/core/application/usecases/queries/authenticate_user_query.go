package queries

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrInvalidCredentials does not say which of the two values was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthenticateUserQuery checks a username and password pair and yields an
// access token.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	var usernameErr, passwordErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(usernameErr, passwordErr); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

func (q AuthenticateUserQuery) Username() string {
	return q.username
}

func (q AuthenticateUserQuery) Password() string {
	return q.password
}
