package user

import (
	"errors"
	"unicode/utf8"

	"shop/internal/pkg/errs"
)

const (
	MaxUsernameLength     = 50
	MaxEmailLength        = 100
	MaxPasswordHashLength = 255
)

// User is an account that can authenticate and place orders.
// ID stays nil until the record has been persisted.
type User struct {
	ID           *int64
	Username     string
	Email        string
	PasswordHash string
}

// New returns an unsaved user.
func New(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// IsPersisted reports whether the store has assigned an identifier.
func (u *User) IsPersisted() bool {
	return u.ID != nil
}

// Validate checks that required fields are present and fit their columns.
func (u *User) Validate() error {
	return errors.Join(
		checkString("username", u.Username, MaxUsernameLength),
		checkString("email", u.Email, MaxEmailLength),
		checkString("passwordHash", u.PasswordHash, MaxPasswordHashLength),
	)
}

func checkString(name, value string, maxLen int) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}

	if n := utf8.RuneCountInString(value); n > maxLen {
		return errs.NewValueIsOutOfRangeError(name, n, 1, maxLen)
	}

	return nil
}
