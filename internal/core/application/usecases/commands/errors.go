package commands

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"shop/internal/pkg/errs"
)

var (
	// ErrForbidden is returned when the acting user does not own the target.
	ErrForbidden = errors.New("operation is not permitted for the acting user")

	// ErrUserHasOrders blocks deleting a user while orders still reference it.
	ErrUserHasOrders = fmt.Errorf("user still has orders: %w", errs.ErrObjectInUse)
)

func checkID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError(name, id, 1, "max int64")
	}
	return nil
}

func checkNonNegative[T int | float64](name string, value T) error {
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	return nil
}

func checkLength(name, value string, minLen, maxLen int) error {
	n := utf8.RuneCountInString(value)
	if n == 0 && minLen > 0 {
		return errs.NewValueIsRequiredError(name)
	}
	if n < minLen || (maxLen > 0 && n > maxLen) {
		return errs.NewValueIsOutOfRangeError(name, n, minLen, maxLen)
	}
	return nil
}
