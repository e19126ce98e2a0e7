package errs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrObjectNotFound is the sentinel for lookups that yield no row.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid is the sentinel for malformed parameter values.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsOutOfRange is the sentinel for values outside an allowed interval.
	ErrValueIsOutOfRange = errors.New("value is out of range")

	// ErrValueIsRequired is the sentinel for missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrPartialWrite is the sentinel for multi-row writes that failed midway,
	// leaving some rows persisted. Callers must reconcile, not retry blindly.
	ErrPartialWrite = errors.New("partial write")
)

// sanitize collapses newlines so error messages stay single-line in logs.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError reports that an entity could not be located by the
// given parameter. Unwraps to ErrObjectNotFound.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-layer error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed parameter. Unwraps to ErrValueIsInvalid.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside its allowed interval.
// Unwraps to ErrValueIsOutOfRange.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing required parameter.
// Unwraps to ErrValueIsRequired.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// SubOrderPersistError reports a sub-order write sequence that failed after
// the main order row (and possibly some sub-orders) were already persisted.
// PersistedSubOrderIDs lists the rows that made it, so the caller can
// reconcile or resume. Unwraps to ErrPartialWrite.
type SubOrderPersistError struct {
	OrderID              uuid.UUID
	PersistedSubOrderIDs []uuid.UUID
	Cause                error
}

// NewSubOrderPersistError creates a SubOrderPersistError for the given order,
// recording which sub-orders were persisted before the failure.
func NewSubOrderPersistError(orderID uuid.UUID, persisted []uuid.UUID, cause error) *SubOrderPersistError {
	return &SubOrderPersistError{OrderID: orderID, PersistedSubOrderIDs: persisted, Cause: cause}
}

func (e *SubOrderPersistError) Error() string {
	return sanitize(fmt.Sprintf("%s: order %s has %d of its sub-orders persisted (cause: %s)",
		ErrPartialWrite, e.OrderID, len(e.PersistedSubOrderIDs), e.Cause))
}

func (e *SubOrderPersistError) Unwrap() error {
	return ErrPartialWrite
}

// SettlementPartiallyPaidError reports that a settlement row was marked paid
// but payment propagation to the linked sub-orders failed midway.
// PaidSubOrderIDs lists the sub-orders already flipped. Unwraps to ErrPartialWrite.
type SettlementPartiallyPaidError struct {
	SettlementID    uuid.UUID
	PaidSubOrderIDs []uuid.UUID
	Cause           error
}

// NewSettlementPartiallyPaidError creates a SettlementPartiallyPaidError for
// the given settlement, recording which sub-orders were updated before the failure.
func NewSettlementPartiallyPaidError(settlementID uuid.UUID, paid []uuid.UUID, cause error) *SettlementPartiallyPaidError {
	return &SettlementPartiallyPaidError{SettlementID: settlementID, PaidSubOrderIDs: paid, Cause: cause}
}

func (e *SettlementPartiallyPaidError) Error() string {
	return sanitize(fmt.Sprintf("%s: settlement %s paid but only %d sub-orders updated (cause: %s)",
		ErrPartialWrite, e.SettlementID, len(e.PaidSubOrderIDs), e.Cause))
}

func (e *SettlementPartiallyPaidError) Unwrap() error {
	return ErrPartialWrite
}
