// Package guard lets value types detect whether they were built through
// their constructor instead of being used as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is supplied for an object that skipped its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in command and value types. Only
// NewConstructorGuard produces a guard that validates, so a zero-value
// struct literal is always rejected.
//
// Example:
//
//	type RegisterUserCommand struct {
//	    username string
//	    guard    guard.ConstructorGuard
//	}
//
//	func (c RegisterUserCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
