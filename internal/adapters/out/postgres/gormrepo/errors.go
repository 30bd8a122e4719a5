package gormrepo

import (
	"errors"

	"shop/internal/pkg/errs"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	unknownConstraint = "unique constraint"

	// OpDelete names delete operations. A foreign key rejecting a delete
	// means the row is still referenced.
	OpDelete = "delete"
)

// isUniqueViolation recognises a unique-constraint rejection whichever way
// it reached us: translated by GORM, raw from pgx or raw from lib/pq.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.UniqueViolation
	}

	return false
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.ForeignKeyViolation
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pgerrcode.ForeignKeyViolation
	}

	return false
}

func constraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Constraint != "" {
		return pqErr.Constraint
	}

	return unknownConstraint
}

// isOutcome reports whether err is already one of the outcomes callers act on
// and must travel up unchanged.
func isOutcome(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound) ||
		errors.Is(err, errs.ErrObjectAlreadyExists) ||
		errors.Is(err, errs.ErrObjectInUse) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange) ||
		errors.Is(err, ErrSessionNotActive) ||
		errors.Is(err, ErrSessionClosed)
}

func (r *Repository[M, E]) translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isOutcome(err):
		return err
	case isUniqueViolation(err):
		return errs.NewObjectAlreadyExistsErrorWithCause(r.entity, constraintName(err), err)
	case op == OpDelete && isForeignKeyViolation(err):
		return errs.NewObjectInUseErrorWithCause(r.entity, constraintName(err), err)
	default:
		return errs.NewStorageFailureError(r.entity+"."+op, err)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return "conflict"
	case errors.Is(err, errs.ErrObjectNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrObjectInUse):
		return "in_use"
	default:
		return "error"
	}
}
