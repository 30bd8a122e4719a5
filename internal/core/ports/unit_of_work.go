package ports

import (
	"context"
	"errors"
)

var (
	ErrUnitOfWorkActive    = errors.New("unit of work is already active")
	ErrUnitOfWorkClosed    = errors.New("unit of work is closed")
	ErrUnitOfWorkNotActive = errors.New("unit of work is not active")
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. An instance is
// single use: unopened, then active after Begin, then closed after Commit or
// Rollback. Client code must explicitly manage the lifecycle.
type UnitOfWork interface {
	// Begin starts the shared transaction. Fails with ErrUnitOfWorkActive
	// when called twice and with ErrUnitOfWorkClosed after the unit closed.
	Begin(ctx context.Context) error

	// Commit makes every write durable and closes the unit. When the commit
	// itself fails the transaction is rolled back and the unit still closes.
	Commit(ctx context.Context) error

	// Rollback discards every write and closes the unit. It returns
	// ErrUnitOfWorkNotActive when there is nothing to roll back, which makes
	// a deferred Rollback after a successful Commit harmless.
	Rollback(ctx context.Context) error

	// Repositories bound to the transaction started by Begin. They fail on
	// every call once the unit has closed.
	UserRepository() UserRepository
	ProductRepository() ProductRepository
	OrderRepository() OrderRepository
}
