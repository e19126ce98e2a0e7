package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrHubCourierIsNotConstructed is returned when a HubCourier instance was
// not created through the NewHubCourier factory method.
var ErrHubCourierIsNotConstructed = errors.New("HubCourier must be created via NewHubCourier constructor")

// HubCourier links a courier to a hub with selection metadata. At most one
// link per hub should be primary; ties between non-primary links break on
// the higher priority rank.
type HubCourier struct {
	hubID     kernel.UUID
	courierID kernel.UUID
	isPrimary bool
	priority  int

	isConstructed bool
}

// NewHubCourier creates a validated hub-courier link.
func NewHubCourier(hubID, courierID kernel.UUID, isPrimary bool, priority int) (*HubCourier, error) {
	link := &HubCourier{
		isPrimary:     isPrimary,
		priority:      priority,
		isConstructed: true,
	}

	if err := errors.Join(
		link.setHubID(hubID),
		link.setCourierID(courierID),
	); err != nil {
		return nil, err
	}

	return link, nil
}

// Validate ensures the HubCourier was constructed through NewHubCourier.
func (hc *HubCourier) Validate() error {
	if hc == nil || !hc.isConstructed {
		return ErrHubCourierIsNotConstructed
	}
	return nil
}

// HubID returns the hub side of the link.
func (hc *HubCourier) HubID() kernel.UUID {
	return hc.hubID
}

// CourierID returns the courier side of the link.
func (hc *HubCourier) CourierID() kernel.UUID {
	return hc.courierID
}

// IsPrimary reports whether this link is the hub's preferred courier.
func (hc *HubCourier) IsPrimary() bool {
	return hc.isPrimary
}

// Priority returns the link's priority rank. Higher wins.
func (hc *HubCourier) Priority() int {
	return hc.priority
}

// Precedes reports whether this link outranks other under the selection
// policy: primary first, then higher priority.
func (hc *HubCourier) Precedes(other *HubCourier) bool {
	if hc.isPrimary != other.isPrimary {
		return hc.isPrimary
	}
	return hc.priority > other.priority
}

func (hc *HubCourier) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return err
	}
	hc.hubID = hubID
	return nil
}

func (hc *HubCourier) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	hc.courierID = courierID
	return nil
}
