package services

import (
	"errors"

	"fulfillment/internal/core/domain/model/courier"
)

// ErrNoCourierAvailable is returned when a hub has no configured courier
// links to choose from. Assignment cannot proceed until an operator links at
// least one courier to the hub.
var ErrNoCourierAvailable = errors.New("no courier available")

// CourierSelector is a domain service responsible for choosing the courier
// that should carry a shipment leaving a hub.
//
// Selection policy:
//   - The hub's primary link always wins
//   - Among non-primary links, the higher priority rank wins
//   - Ties keep the earlier link in the provided order
//
// The selector reads a point-in-time snapshot of the hub's links. Two
// shipments selected concurrently may both pick the same courier; couriers
// are not a capacity-limited resource, so this is acceptable.
//
// Example usage:
//
//	selector := NewCourierSelector()
//	links, _ := hubRepository.GetHubCouriers(ctx, hubID)
//
//	best, err := selector.Select(links)
//	if errors.Is(err, ErrNoCourierAvailable) {
//	    // hub has no couriers configured
//	    return
//	}
type CourierSelector struct{}

// NewCourierSelector creates a new CourierSelector instance.
func NewCourierSelector() CourierSelector {
	return CourierSelector{}
}

// Select returns the link that outranks all others under the primary-first,
// then highest-priority policy. Returns ErrNoCourierAvailable when links is
// empty, or a validation error when any link was not properly constructed.
func (s CourierSelector) Select(links []*courier.HubCourier) (*courier.HubCourier, error) {
	var best *courier.HubCourier

	for _, link := range links {
		if err := link.Validate(); err != nil {
			return nil, err
		}

		if best == nil || link.Precedes(best) {
			best = link
		}
	}

	if best == nil {
		return nil, ErrNoCourierAvailable
	}

	return best, nil
}
