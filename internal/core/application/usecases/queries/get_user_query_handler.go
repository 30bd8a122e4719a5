package queries

import (
	"context"

	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

type GetUserQueryHandler struct {
	users ports.UserRepository
}

func NewGetUserQueryHandler(users ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

// Handle fails with errs.ErrObjectNotFound when the user does not exist.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, errs.NewObjectNotFoundError("user", query.UserID())
	}

	return found, nil
}
