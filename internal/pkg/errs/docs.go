// Package errs provides standardized error types for the restaurant application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value violates a validation rule
//   - ValueIsOutOfRangeError: for when a value falls outside its permitted range
//   - ObjectNotFoundError: for when a referenced entity cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify by sentinel
//
// Domain rule violations (illegal status transitions, occupancy preconditions,
// price invariants) are sentinels owned by their domain packages; this package
// only covers the cross-cutting kinds shared by every layer.
package errs
