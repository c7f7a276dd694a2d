// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the codebase.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// The taxonomy covers validation failures (ErrValueIsRequired,
// ErrValueIsInvalid, ErrValueIsOutOfRange), missing objects
// (ErrObjectNotFound), illegal order lifecycle moves (ErrInvalidTransition),
// persistence failures (ErrStorageUnavailable), upstream connectivity
// failures (ErrTransportFailure), stale aggregate versions
// (ErrVersionIsInvalid), and everything unexpected (ErrInternal).
package errs
