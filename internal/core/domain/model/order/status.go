package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the overall lifecycle state of a main order. It is a
// separate enum from the per-shipment DeliveryStatus: a main order is
// "shipped" once all of its sub-orders left their hubs, "partially shipped"
// when only some did.
//
// State transitions:
//
//	Pending ──> Processing ──> PartiallyShipped ──> Shipped ──> Delivered
//	   │             │                                              │
//	   └── Cancelled ┘                                 Refunded <───┘
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial status of an order awaiting processing.
	StatusPending

	// StatusProcessing indicates the order was accepted and split into
	// sub-orders that are being prepared.
	StatusProcessing

	// StatusPartiallyShipped indicates some, but not all, sub-orders left
	// their hubs.
	StatusPartiallyShipped

	// StatusShipped indicates every sub-order left its hub.
	StatusShipped

	// StatusDelivered indicates every sub-order reached the customer.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before shipping.
	StatusCancelled

	// StatusRefunded indicates the customer was refunded.
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusPending:          "pending",
		StatusProcessing:       "processing",
		StatusPartiallyShipped: "partially_shipped",
		StatusShipped:          "shipped",
		StatusDelivered:        "delivered",
		StatusCancelled:        "cancelled",
		StatusRefunded:         "refunded",
	}
}

func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:          {StatusProcessing, StatusCancelled},
		StatusProcessing:       {StatusPartiallyShipped, StatusShipped, StatusCancelled},
		StatusPartiallyShipped: {StatusShipped, StatusDelivered},
		StatusShipped:          {StatusDelivered},
		StatusDelivered:        {StatusRefunded},
		StatusCancelled:        {StatusRefunded},
	}
}

// Validate checks that the Status is one of the defined order states.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the snake_case name of the status, "unknown" for invalid
// values. This is the representation persisted and exposed over HTTP.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the lifecycle allows moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next when the move is legal, an error otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot transition order from %s to %s", s, next))
	}
	return next, nil
}

// StatusFromString parses the persisted snake_case representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid order status", s))
}
