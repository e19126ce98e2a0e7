// Package errs provides standardized error types for the fulfillment engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value is outside its allowed interval
//   - ObjectNotFoundError: For when an object cannot be found
//   - SubOrderPersistError: For order splits that left partial rows behind
//   - SettlementPartiallyPaidError: For settlement payouts that propagated
//     to only some of their sub-orders
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The two partial-write types additionally carry the IDs of rows that were
// persisted before the failure, so callers can reconcile manually or retry
// idempotently instead of treating the write as all-or-nothing.
package errs
