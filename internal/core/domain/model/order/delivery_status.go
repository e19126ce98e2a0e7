package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// DeliveryStatus represents the lifecycle state of a sub-order shipment.
// Each status carries an explicit ordinal so callers can opt into strict
// monotonic event recording; the default mode accepts events verbatim, out
// of order included, mirroring how courier webhooks behave in practice.
type DeliveryStatus int

const (
	// DeliveryUnknown represents an invalid or undefined status.
	DeliveryUnknown DeliveryStatus = iota

	// DeliveryPending is the initial status of a freshly split sub-order.
	DeliveryPending

	// DeliveryAssigned indicates a courier was selected for the shipment.
	DeliveryAssigned

	// DeliveryPickedUp indicates the courier collected the shipment from its hub.
	DeliveryPickedUp

	// DeliveryInTransit indicates the shipment is between the hub and the
	// destination region.
	DeliveryInTransit

	// DeliveryOutForDelivery indicates the shipment is on its last leg.
	DeliveryOutForDelivery

	// DeliveryDelivered is the terminal success status.
	DeliveryDelivered

	// DeliveryFailed is a terminal alternate reachable from any in-flight state.
	DeliveryFailed

	// DeliveryReturned indicates the shipment went back to its hub.
	DeliveryReturned

	// DeliveryCancelled indicates the parent order was cancelled while the
	// shipment was still pending or assigned.
	DeliveryCancelled
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		DeliveryUnknown:        "unknown",
		DeliveryPending:        "pending",
		DeliveryAssigned:       "assigned",
		DeliveryPickedUp:       "picked_up",
		DeliveryInTransit:      "in_transit",
		DeliveryOutForDelivery: "out_for_delivery",
		DeliveryDelivered:      "delivered",
		DeliveryFailed:         "failed",
		DeliveryReturned:       "returned",
		DeliveryCancelled:      "cancelled",
	}
}

// Validate checks that the DeliveryStatus is one of the defined states.
func (s DeliveryStatus) Validate() error {
	if s <= DeliveryUnknown || s > DeliveryCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

// String returns the snake_case name of the status, "unknown" for invalid
// values. This is the representation persisted and exposed over HTTP.
func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Ordinal returns the position of the status along the forward progression.
// Terminal alternates (failed, returned, cancelled) sit past delivered so a
// strict-mode recorder still accepts them from any in-flight state.
func (s DeliveryStatus) Ordinal() int {
	return int(s)
}

// IsTerminal reports whether the status admits no further progression.
func (s DeliveryStatus) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed ||
		s == DeliveryReturned || s == DeliveryCancelled
}

// ValidateAssign checks that a courier may be assigned from this status.
// Assignment is allowed from pending and assigned (re-assignment overwrites
// the courier; callers guard against re-assigning active shipments).
func (s DeliveryStatus) ValidateAssign() error {
	if s != DeliveryPending && s != DeliveryAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign a courier", s))
	}
	return nil
}

// ValidateProgression checks a proposed status change under strict monotonic
// recording: the new status must not regress along the ordinal. Accept-any
// recording skips this check entirely.
func (s DeliveryStatus) ValidateProgression(next DeliveryStatus) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if next.Ordinal() < s.Ordinal() {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"status ordinal", next.Ordinal(), s.Ordinal(), len(getDeliveryStatusStrings())-1,
			fmt.Errorf("%s regresses from %s under strict ordering", next, s))
	}
	return nil
}

// DeliveryStatusFromString parses the persisted snake_case representation.
func DeliveryStatusFromString(s string) (DeliveryStatus, error) {
	for status, str := range getDeliveryStatusStrings() {
		if str == s && status != DeliveryUnknown {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid delivery status", s))
}
