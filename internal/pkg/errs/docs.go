// Package errs provides standardized error types for the logistics core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the three error kinds raised by the core:
//   - ObjectNotFoundError: an operation referenced an id that does not resolve
//   - BusinessRuleError: the entities exist but the requested relationship is invalid
//   - StorageError: the persistence backend could not complete an operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so callers can classify with errors.Is
//
// Validation failures are owned by the front-end's validation helpers and
// never originate inside the core.
package errs
