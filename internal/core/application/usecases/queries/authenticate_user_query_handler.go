package queries

import (
	"context"
	"time"

	"shop/internal/core/ports"
)

// AuthenticateUserQueryResponse carries the signed token and its expiry.
type AuthenticateUserQueryResponse struct {
	UserID    int64
	Token     string
	ExpiresAt time.Time
}

type AuthenticateUserQueryHandler struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewAuthenticateUserQueryHandler(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{
		users:  users,
		hasher: hasher,
		issuer: issuer,
	}
}

// Handle returns ErrInvalidCredentials both for an unknown username and for
// a wrong password.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	found, err := h.users.GetByUsername(ctx, query.Username())
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	if found == nil || found.ID == nil || !h.hasher.Compare(found.PasswordHash, query.Password()) {
		return AuthenticateUserQueryResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := h.issuer.Issue(ctx, *found.ID)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		UserID:    *found.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
