package settlement

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a settlement batch.
//
// State transitions:
//
//	Pending ──> Approved ──> Paid
//	   │            │
//	   └─> Voided <─┘
//
// Pending may also be paid directly; Paid and Voided are final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of a freshly aggregated batch.
	StatusPending

	// StatusApproved indicates an operator signed off on the batch.
	StatusApproved

	// StatusPaid indicates the courier was paid. Final.
	StatusPaid

	// StatusVoided indicates the batch was discarded before payment and its
	// sub-orders may be re-aggregated. Final.
	StatusVoided
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		StatusPending:  "pending",
		StatusApproved: "approved",
		StatusPaid:     "paid",
		StatusVoided:   "voided",
	}
}

// Validate checks that the Status is one of the defined settlement states.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusVoided {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid settlement status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Approve transitions pending to approved.
func (s Status) Approve() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s cannot be approved", s))
	}
	return StatusApproved, nil
}

// Pay transitions pending or approved to paid.
func (s Status) Pay() (Status, error) {
	if s != StatusPending && s != StatusApproved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s cannot be paid", s))
	}
	return StatusPaid, nil
}

// StatusFromString parses the persisted snake_case representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid settlement status", s))
}
