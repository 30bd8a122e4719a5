// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read through the stand-alone repositories, never inside a unit of work.
package queries

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves one user by ID.
type GetUserQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

func NewGetUserQuery(userID int64) (GetUserQuery, error) {
	if userID <= 0 {
		return GetUserQuery{}, errs.NewValueIsOutOfRangeError("userID", userID, 1, "max int64")
	}

	return GetUserQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) UserID() int64 {
	return q.userID
}
