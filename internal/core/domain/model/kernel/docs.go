// Package kernel contains shared value objects used across all domain
// aggregates of the fulfillment engine.
//
// The package provides:
//   - UUID: an immutable identifier value object wrapping github.com/google/uuid
//   - Money: a currency amount with two-decimal rounding semantics used for
//     subtotals, shipping fees, and settlement amounts
//
// Value objects in this package are immutable and validate themselves at
// construction. The zero value of each type is invalid and fails Validate,
// which repositories rely on when rehydrating aggregates from storage.
package kernel
