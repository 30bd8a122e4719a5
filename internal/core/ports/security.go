package ports

import (
	"context"
	"time"
)

// PasswordHasher turns plain passwords into opaque hashes and checks them.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (token string, expiresAt time.Time, err error)
}

// TokenVerifier validates access tokens and returns the user they were
// issued to.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (userID int64, err error)
}
