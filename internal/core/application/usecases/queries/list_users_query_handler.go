package queries

import (
	"context"

	"shop/internal/core/ports"
)

type ListUsersQueryHandler struct {
	users ports.UserRepository
}

func NewListUsersQueryHandler(users ports.UserRepository) ListUsersQueryHandler {
	return ListUsersQueryHandler{users: users}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) (ListUsersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListUsersQueryResponse{}, err
	}

	users, err := h.users.ListAll(ctx, query.Filter(), query.Page())
	if err != nil {
		return ListUsersQueryResponse{}, err
	}

	total, err := h.users.CountAll(ctx, query.Filter())
	if err != nil {
		return ListUsersQueryResponse{}, err
	}

	return ListUsersQueryResponse{Users: users, Total: total}, nil
}
