// Package errs provides standardized error types for the store panel.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// Domain-specific failure conditions (verification code mismatch, order
// already finalized, and so on) are sentinel errors owned by the domain
// packages; this package covers the generic validation and lookup cases.
package errs
