// Package gormrepo holds the persistence machinery shared by every entity
// repository.
//
// A Repository runs in one of two modes, chosen by whether it was given a
// Session:
//
//   - private: every write opens its own transaction and commits it before
//     returning; reads go straight to the pool.
//   - borrowed: every statement, read or write, runs inside a savepoint of
//     the transaction owned by a unit of work. A failure rolls back to its
//     savepoint, which keeps the shared transaction usable, and nothing is
//     ever committed here.
//
// Three write-side primitives cover all entity operations: Save inserts and
// reloads a row, Exec runs an update or delete and turns zero affected rows
// into errs.ObjectNotFoundError. FetchOne, FetchMany and Count are read-only.
package gormrepo

import (
	"context"
	"database/sql"
	"errors"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/logger"
	"shop/internal/pkg/metrics"

	"gorm.io/gorm"
)

// Query narrows a statement before it is executed.
type Query func(db *gorm.DB) *gorm.DB

// Repository implements the transactional primitives for rows of type M
// mapped to entities of type E.
type Repository[M any, E any] struct {
	db       *gorm.DB
	session  *Session
	entity   string
	toEntity func(row *M) *E
	log      logger.Logger
	metrics  metrics.Metrics
}

type Option func(*options)

type options struct {
	log     logger.Logger
	metrics metrics.Metrics
}

func WithLogger(log logger.Logger) Option {
	return func(o *options) { o.log = log }
}

func WithMetrics(m metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// New builds a repository base. A nil session selects private mode.
func New[M any, E any](
	db *gorm.DB,
	session *Session,
	entity string,
	toEntity func(row *M) *E,
	opts ...Option,
) *Repository[M, E] {
	o := options{log: logger.NewNop(), metrics: metrics.Nop{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Repository[M, E]{
		db:       db,
		session:  session,
		entity:   entity,
		toEntity: toEntity,
		log:      o.log.With(logger.String("entity", entity)),
		metrics:  o.metrics,
	}
}

// IsBorrowed reports whether writes run inside a unit of work.
func (r *Repository[M, E]) IsBorrowed() bool {
	return r.session != nil
}

// Save runs write for a new row, reloads the row by primary key to pick up
// server-assigned columns and maps it to an entity.
func (r *Repository[M, E]) Save(
	ctx context.Context,
	op string,
	row *M,
	write func(tx *gorm.DB, row *M) error,
) (*E, error) {
	var saved *E
	err := r.write(ctx, op, func(tx *gorm.DB) error {
		if err := write(tx, row); err != nil {
			return err
		}

		if err := tx.First(row).Error; err != nil {
			return err
		}

		saved = r.toEntity(row)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return saved, nil
}

// Exec runs an update or delete targeting id. When the statement affects no
// rows the write is rolled back and errs.ObjectNotFoundError is returned.
func (r *Repository[M, E]) Exec(ctx context.Context, op string, id any, write func(tx *gorm.DB) *gorm.DB) error {
	return r.write(ctx, op, func(tx *gorm.DB) error {
		res := write(tx)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return errs.NewObjectNotFoundError(r.entity, id)
		}

		return nil
	})
}

// FetchOne returns the first matching row or nil when nothing matches.
func (r *Repository[M, E]) FetchOne(ctx context.Context, query Query) (*E, error) {
	var (
		row   M
		found bool
	)
	err := r.read(ctx, "fetch_one", func(db *gorm.DB) error {
		res := query(db.Model(new(M))).Limit(1).Find(&row)
		found = res.RowsAffected > 0
		return res.Error
	})
	if err != nil || !found {
		return nil, err
	}

	return r.toEntity(&row), nil
}

// FetchMany returns the matching rows ordered by primary key within page.
func (r *Repository[M, E]) FetchMany(ctx context.Context, query Query, page ports.Page) ([]*E, error) {
	var rows []M
	err := r.read(ctx, "fetch_many", func(db *gorm.DB) error {
		stmt := query(db.Model(new(M))).Order("id ASC")
		if page.Offset > 0 {
			stmt = stmt.Offset(page.Offset)
		}
		if page.Limit > 0 {
			stmt = stmt.Limit(page.Limit)
		}
		return stmt.Find(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	entities := make([]*E, 0, len(rows))
	for i := range rows {
		entities = append(entities, r.toEntity(&rows[i]))
	}

	return entities, nil
}

func (r *Repository[M, E]) Count(ctx context.Context, query Query) (int64, error) {
	var n int64
	err := r.read(ctx, "count", func(db *gorm.DB) error {
		return query(db.Model(new(M))).Count(&n).Error
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

// read runs fn on the pool in private mode. In borrowed mode it runs under a
// savepoint like a write, so a failed read leaves the shared transaction
// usable.
func (r *Repository[M, E]) read(ctx context.Context, op string, fn func(db *gorm.DB) error) error {
	if r.session == nil {
		if err := fn(r.db.WithContext(ctx)); err != nil {
			return r.translate(op, err)
		}
		return nil
	}

	return r.inSavepoint(ctx, op, fn)
}

func (r *Repository[M, E]) write(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	var err error
	if r.session == nil {
		err = r.writePrivate(ctx, op, fn)
	} else {
		err = r.inSavepoint(ctx, op, fn)
	}

	r.metrics.RecordRepositoryWrite(r.entity, op, outcomeOf(err))
	return err
}

func (r *Repository[M, E]) writePrivate(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return r.translate(op, tx.Error)
	}

	committed := false
	defer func() {
		if committed {
			return
		}

		r.log.Warn(ctx, "private transaction rolled back", logger.String("op", op))
		if err := tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
			r.log.Error(ctx, "rollback failed", logger.String("op", op), logger.WithError(err))
		}
	}()

	if err := fn(tx); err != nil {
		return r.translate(op, err)
	}

	if err := tx.Commit().Error; err != nil {
		return r.translate(op, err)
	}

	committed = true
	return nil
}

func (r *Repository[M, E]) inSavepoint(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	shared, err := r.session.Tx()
	if err != nil {
		return err
	}

	tx := shared.WithContext(ctx)
	savepoint := r.session.nextSavepoint()
	if err = tx.Exec("SAVEPOINT " + savepoint).Error; err != nil {
		return r.translate(op, err)
	}

	released := false
	defer func() {
		if released {
			return
		}

		if rbErr := tx.Exec("ROLLBACK TO SAVEPOINT " + savepoint).Error; rbErr != nil {
			r.log.Error(ctx, "rollback to savepoint failed",
				logger.String("op", op),
				logger.String("savepoint", savepoint),
				logger.WithError(rbErr),
			)
		}
	}()

	if err = fn(tx); err != nil {
		return r.translate(op, err)
	}

	if err = tx.Exec("RELEASE SAVEPOINT " + savepoint).Error; err != nil {
		return r.translate(op, err)
	}

	released = true
	return nil
}
