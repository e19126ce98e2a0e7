package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// SettlementStatus tracks what a sub-order's courier is owed for it.
// Sub-orders start pending, may be approved by an operator, and become paid
// only through the settlement pay action.
type SettlementStatus int

const (
	// SettlementUnknown represents an invalid or undefined status.
	SettlementUnknown SettlementStatus = iota

	// SettlementPending indicates the shipping cost is still owed.
	SettlementPending

	// SettlementApproved indicates an operator approved the amount for payout.
	SettlementApproved

	// SettlementPaid indicates the courier was paid for this sub-order.
	SettlementPaid
)

func getSettlementStatusStrings() map[SettlementStatus]string {
	return map[SettlementStatus]string{
		SettlementUnknown:  "unknown",
		SettlementPending:  "pending",
		SettlementApproved: "approved",
		SettlementPaid:     "paid",
	}
}

// Validate checks that the SettlementStatus is one of the defined states.
func (s SettlementStatus) Validate() error {
	if s <= SettlementUnknown || s > SettlementPaid {
		return errs.NewValueIsInvalidErrorWithCause(
			"settlementStatus is invalid",
			fmt.Errorf("%d is not a valid settlement status", s))
	}
	return nil
}

// String returns the snake_case name of the status.
func (s SettlementStatus) String() string {
	if str, ok := getSettlementStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsPayable reports whether a sub-order in this status may enter a settlement.
func (s SettlementStatus) IsPayable() bool {
	return s == SettlementPending || s == SettlementApproved
}

// SettlementStatusFromString parses the persisted snake_case representation.
func SettlementStatusFromString(s string) (SettlementStatus, error) {
	for status, str := range getSettlementStatusStrings() {
		if str == s && status != SettlementUnknown {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"settlementStatus is invalid",
		fmt.Errorf("%q is not a valid settlement status", s))
}
