// Package postgres provides the GORM-based Unit of Work, the connection
// provider and the wiring of the entity repositories.
//
// A unit of work owns one transaction for the duration of a business
// operation. The repositories it hands out are bound to that transaction
// through a shared gormrepo.Session: their writes run inside savepoints and
// only Commit makes them durable.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	owner, err := uow.UserRepository().Get(ctx, userID)
//	if err != nil {
//	    return err
//	}
//	if owner == nil {
//	    return errs.NewObjectNotFoundError("user", userID)
//	}
//
//	if _, err = uow.OrderRepository().Add(ctx, order.New(userID, total)); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// The deferred Rollback also runs when the handler panics. After a successful
// Commit it returns ports.ErrUnitOfWorkNotActive without touching the
// database.
//
// Concurrency: a unit of work and its repositories are used by one goroutine.
// Concurrent operations each create their own instance from the factory.
package postgres

import (
	"context"
	"database/sql"
	"errors"

	"shop/internal/adapters/out/postgres/gormrepo"
	"shop/internal/adapters/out/postgres/orderrepo"
	"shop/internal/adapters/out/postgres/productrepo"
	"shop/internal/adapters/out/postgres/userrepo"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/logger"
	"shop/internal/pkg/metrics"

	"gorm.io/gorm"
)

var _ ports.UnitOfWork = (*GormUnitOfWork)(nil)

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db      *gorm.DB
	log     logger.Logger
	metrics metrics.Metrics
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// The provided database connection will be used for all created unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB, log logger.Logger, m metrics.Metrics) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, log: log, metrics: m}
}

// Create produces a new, unopened UnitOfWork.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewGormUnitOfWork(f.db, f.log, f.metrics)
}

// GormUnitOfWork coordinates one database transaction shared by the user,
// product and order repositories.
type GormUnitOfWork struct {
	db      *gorm.DB
	session *gormrepo.Session
	log     logger.Logger
	metrics metrics.Metrics

	users    *userrepo.GormUserRepository
	products *productrepo.GormProductRepository
	orders   *orderrepo.GormOrderRepository
}

func NewGormUnitOfWork(db *gorm.DB, log logger.Logger, m metrics.Metrics) *GormUnitOfWork {
	session := gormrepo.NewSession()
	opts := []gormrepo.Option{gormrepo.WithLogger(log), gormrepo.WithMetrics(m)}

	return &GormUnitOfWork{
		db:       db,
		session:  session,
		log:      log,
		metrics:  m,
		users:    userrepo.NewGormUserRepository(db, session, opts...),
		products: productrepo.NewGormProductRepository(db, session, opts...),
		orders:   orderrepo.NewGormOrderRepository(db, session, opts...),
	}
}

// Begin opens the transaction. A unit of work is opened at most once:
// a second Begin fails with ports.ErrUnitOfWorkActive and a Begin after
// Commit or Rollback fails with ports.ErrUnitOfWorkClosed.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	switch {
	case uow.session.IsActive():
		return ports.ErrUnitOfWorkActive
	case uow.session.IsClosed():
		return ports.ErrUnitOfWorkClosed
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageFailureError("unit_of_work.begin", tx.Error)
	}

	return uow.session.Attach(tx)
}

// Commit finalizes all changes made within the transaction and closes the
// unit of work. If the commit fails the transaction is rolled back, the unit
// still closes and the failure is returned as errs.StorageFailureError.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	tx, err := uow.session.Tx()
	if err != nil {
		return ports.ErrUnitOfWorkNotActive
	}
	defer uow.session.Detach()

	if err = tx.Commit().Error; err != nil {
		uow.metrics.RecordUnitOfWork(metrics.OutcomeCommitFailed)
		uow.log.Error(ctx, "unit of work commit failed", logger.WithError(err))

		if rbErr := tx.Rollback().Error; rbErr != nil && !isAborted(rbErr) {
			uow.log.Warn(ctx, "rollback after failed commit failed", logger.WithError(rbErr))
		}

		return errs.NewStorageFailureError("unit_of_work.commit", err)
	}

	uow.metrics.RecordUnitOfWork(metrics.OutcomeCommit)
	return nil
}

// Rollback discards all changes and closes the unit of work. When the unit
// is not active it returns ports.ErrUnitOfWorkNotActive and does nothing.
// A transaction the driver already aborted, e.g. because the request context
// was cancelled, counts as rolled back.
func (uow *GormUnitOfWork) Rollback(ctx context.Context) error {
	tx, err := uow.session.Tx()
	if err != nil {
		return ports.ErrUnitOfWorkNotActive
	}
	uow.session.Detach()
	uow.metrics.RecordUnitOfWork(metrics.OutcomeRollback)

	if err = tx.Rollback().Error; err != nil {
		if isAborted(err) {
			uow.log.Debug(ctx, "transaction already aborted", logger.WithError(err))
			return nil
		}

		uow.log.Warn(ctx, "unit of work rollback failed", logger.WithError(err))
		return errs.NewStorageFailureError("unit_of_work.rollback", err)
	}

	return nil
}

// isAborted reports whether the driver gave up the transaction on its own.
// PostgreSQL never keeps a transaction whose connection was interrupted.
func isAborted(err error) bool {
	return errors.Is(err, sql.ErrTxDone) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// UserRepository returns the user repository bound to this unit of work.
func (uow *GormUnitOfWork) UserRepository() ports.UserRepository {
	return uow.users
}

// ProductRepository returns the product repository bound to this unit of work.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return uow.products
}

// OrderRepository returns the order repository bound to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.orders
}
