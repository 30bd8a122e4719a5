// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package groups errors by the outcome a caller has to react to:
//   - ObjectNotFoundError: a targeted row does not exist
//   - ObjectAlreadyExistsError: a uniqueness invariant was violated (conflict)
//   - ObjectInUseError: an object is still referenced and cannot be removed
//   - StorageFailureError: any other storage-layer failure (transient)
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError:
//     validation of constructor and command arguments
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels and extract
// details with errors.As against the struct types.
package errs
