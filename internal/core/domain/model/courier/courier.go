package courier

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrCourierIsNotConstructed is returned when a Courier instance was not
// created through the NewCourier factory method.
var ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")

// Courier represents a delivery company that carries sub-orders from hubs to
// customers.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name and code must be non-empty
//   - Success rate, when set, lies in [0, 100]
type Courier struct {
	id          kernel.UUID
	name        string
	code        string
	active      bool
	baseRate    kernel.Money
	successRate float64

	isConstructed bool
}

// NewCourier creates a validated Courier. The base rate is the courier's
// default charge used when no shipping rate row applies; successRate is an
// informational percentage.
func NewCourier(id kernel.UUID, name, code string, active bool, baseRate kernel.Money, successRate float64) (*Courier, error) {
	courier := &Courier{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setCode(code),
		courier.setBaseRate(baseRate),
		courier.setSuccessRate(successRate),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// Validate ensures the Courier was constructed through NewCourier.
func (c *Courier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCourierIsNotConstructed
	}
	return nil
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Code returns the courier's short code.
func (c *Courier) Code() string {
	return c.code
}

// IsActive reports whether the courier currently accepts shipments.
func (c *Courier) IsActive() bool {
	return c.active
}

// BaseRate returns the courier's default charge.
func (c *Courier) BaseRate() kernel.Money {
	return c.baseRate
}

// SuccessRate returns the courier's delivery success percentage.
func (c *Courier) SuccessRate() float64 {
	return c.successRate
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Courier) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *Courier) setBaseRate(baseRate kernel.Money) error {
	if err := baseRate.Validate(); err != nil {
		return err
	}
	c.baseRate = baseRate
	return nil
}

func (c *Courier) setSuccessRate(successRate float64) error {
	if successRate < 0 || successRate > 100 {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"successRate", successRate, 0, 100,
			fmt.Errorf("%f is not a percentage", successRate))
	}
	c.successRate = successRate
	return nil
}
