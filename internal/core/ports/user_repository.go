package ports

import (
	"context"

	"shop/internal/core/domain/model/user"
)

// UserFilter narrows user listings. Empty fields do not filter; non-empty
// ones match case-insensitive substrings.
type UserFilter struct {
	UsernameContains string
	EmailContains    string
}

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user and returns it with the assigned ID.
	// Fails with errs.ErrObjectAlreadyExists when username or email is taken,
	// and with errs.ErrValueIsInvalid when u already has an ID.
	Add(ctx context.Context, u *user.User) (*user.User, error)

	// Delete removes the user. Fails with errs.ErrObjectNotFound when no row matches.
	Delete(ctx context.Context, id int64) error

	UpdateEmail(ctx context.Context, id int64, email string) error
	UpdateUsername(ctx context.Context, id int64, username string) error

	// Get returns nil without an error when the user does not exist.
	Get(ctx context.Context, id int64) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ListAll returns users ordered by ID.
	ListAll(ctx context.Context, filter UserFilter, page Page) ([]*user.User, error)
	CountAll(ctx context.Context, filter UserFilter) (int64, error)
}
