// Package zone contains the shipping zone aggregate. A zone groups the
// states a hub network delivers to and carries the estimated delivery time
// used in shipping quotes. Every deliverable state belongs to exactly one
// zone; overlapping zone configurations are rejected at load time rather
// than resolved at runtime.
package zone

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrZoneIsNotConstructed is returned when a Zone instance was not created
	// through the NewZone factory method.
	ErrZoneIsNotConstructed = errors.New("Zone must be created via NewZone constructor")

	// ErrZonesOverlap is returned by ValidateNoOverlap when two zones claim
	// the same state. This is a configuration error, not a runtime branch.
	ErrZonesOverlap = errors.New("two zones claim the same state")
)

// Zone is the aggregate for a shipping zone.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name and code must be non-empty
//   - Must cover at least one state
//   - Estimated delivery days must be positive
type Zone struct {
	id            kernel.UUID
	name          string
	code          string
	states        []string
	estimatedDays int

	isConstructed bool
}

// NewZone creates a validated Zone. State membership is stored as given but
// matched case-insensitively by ContainsState.
func NewZone(id kernel.UUID, name, code string, states []string, estimatedDays int) (*Zone, error) {
	zone := &Zone{isConstructed: true}

	if err := errors.Join(
		zone.setID(id),
		zone.setName(name),
		zone.setCode(code),
		zone.setStates(states),
		zone.setEstimatedDays(estimatedDays),
	); err != nil {
		return nil, err
	}

	return zone, nil
}

// RestoreZone rehydrates a Zone from persistence without re-deriving state.
// The stored row is assumed to have passed NewZone validation when written.
func RestoreZone(id kernel.UUID, name, code string, states []string, estimatedDays int) (*Zone, error) {
	return NewZone(id, name, code, states, estimatedDays)
}

// Validate ensures the Zone was constructed through NewZone.
func (z *Zone) Validate() error {
	if z == nil || !z.isConstructed {
		return ErrZoneIsNotConstructed
	}
	return nil
}

// ID returns the zone's unique identifier.
func (z *Zone) ID() kernel.UUID {
	return z.id
}

// Name returns the zone's display name.
func (z *Zone) Name() string {
	return z.name
}

// Code returns the zone's short code.
func (z *Zone) Code() string {
	return z.code
}

// States returns the states the zone covers.
func (z *Zone) States() []string {
	out := make([]string, len(z.states))
	copy(out, z.states)
	return out
}

// EstimatedDeliveryDays returns the delivery estimate quoted for the zone.
func (z *Zone) EstimatedDeliveryDays() int {
	return z.estimatedDays
}

// ContainsState reports whether the zone covers the given state.
// Matching is case-insensitive and ignores surrounding whitespace.
func (z *Zone) ContainsState(state string) bool {
	needle := normalizeState(state)
	for _, s := range z.states {
		if normalizeState(s) == needle {
			return true
		}
	}
	return false
}

// ValidateNoOverlap checks a zone configuration for states claimed by more
// than one zone. Returns ErrZonesOverlap naming the first offending state.
func ValidateNoOverlap(zones []*Zone) error {
	seen := make(map[string]string)
	for _, z := range zones {
		if err := z.Validate(); err != nil {
			return err
		}
		for _, s := range z.states {
			key := normalizeState(s)
			if owner, ok := seen[key]; ok && owner != z.name {
				return fmt.Errorf("%w: state %q in zones %q and %q", ErrZonesOverlap, s, owner, z.name)
			}
			seen[key] = z.name
		}
	}
	return nil
}

func normalizeState(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (z *Zone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	z.id = id
	return nil
}

func (z *Zone) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	z.name = name
	return nil
}

func (z *Zone) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	z.code = code
	return nil
}

func (z *Zone) setStates(states []string) error {
	if len(states) == 0 {
		return errs.NewValueIsRequiredError("states")
	}
	for _, s := range states {
		if strings.TrimSpace(s) == "" {
			return errs.NewValueIsInvalidError("states")
		}
	}
	z.states = make([]string, len(states))
	copy(z.states, states)
	return nil
}

func (z *Zone) setEstimatedDays(days int) error {
	if days <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDeliveryDays", fmt.Errorf("%d is not greater than 0", days))
	}
	z.estimatedDays = days
	return nil
}
