// Package hub contains the fulfillment hub aggregate.
package hub

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrHubIsNotConstructed is returned when a Hub instance was not created
// through the NewHub factory method.
var ErrHubIsNotConstructed = errors.New("Hub must be created via NewHub constructor")

// Hub is a fulfillment location that stocks items and hands shipments to
// couriers. Hubs own zero or more courier links (see courier.HubCourier).
type Hub struct {
	id     kernel.UUID
	name   string
	city   string
	state  string
	active bool

	isConstructed bool
}

// NewHub creates a validated Hub. City and state are optional on creation;
// name is required.
func NewHub(id kernel.UUID, name, city, state string, active bool) (*Hub, error) {
	hub := &Hub{
		city:          city,
		state:         state,
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		hub.setID(id),
		hub.setName(name),
	); err != nil {
		return nil, err
	}

	return hub, nil
}

// Validate ensures the Hub was constructed through NewHub.
func (h *Hub) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHubIsNotConstructed
	}
	return nil
}

// ID returns the hub's unique identifier.
func (h *Hub) ID() kernel.UUID {
	return h.id
}

// Name returns the hub's display name.
func (h *Hub) Name() string {
	return h.name
}

// City returns the hub's city.
func (h *Hub) City() string {
	return h.city
}

// State returns the hub's state.
func (h *Hub) State() string {
	return h.state
}

// IsActive reports whether the hub currently accepts shipments.
func (h *Hub) IsActive() bool {
	return h.active
}

func (h *Hub) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	h.id = id
	return nil
}

func (h *Hub) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	h.name = name
	return nil
}
