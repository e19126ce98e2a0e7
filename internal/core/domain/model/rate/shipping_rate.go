// Package rate contains the shipping rate aggregate and its pricing rules.
package rate

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrShippingRateIsNotConstructed is returned when a ShippingRate instance
// was not created through the NewShippingRate factory method.
var ErrShippingRateIsNotConstructed = errors.New(
	"ShippingRate must be created via NewShippingRate constructor")

// ShippingRate is a priced row scoped to a zone and optionally narrowed to a
// hub and/or courier. Several rates may match a (zone, hub) pair; the active
// row with the highest priority governs. Rates are soft-disabled through the
// active flag and never hard-deleted while historical sub-orders reference
// them.
//
// Pricing: cost = flatRate + perKgRate × totalWeight, with the whole group
// cost waived when the order value reaches the free-shipping threshold.
type ShippingRate struct {
	id        kernel.UUID
	zoneID    kernel.UUID
	hubID     *kernel.UUID
	courierID *kernel.UUID

	flatRate              kernel.Money
	perKgRate             kernel.Money
	minWeightKg           *float64
	maxWeightKg           *float64
	freeShippingThreshold *kernel.Money

	active   bool
	priority int

	isConstructed bool
}

// NewShippingRate creates a validated ShippingRate. hubID, courierID, weight
// bounds, and the free-shipping threshold are optional; a nil perKgRate
// concern is expressed by passing kernel.ZeroMoney().
func NewShippingRate(
	id, zoneID kernel.UUID,
	hubID, courierID *kernel.UUID,
	flatRate, perKgRate kernel.Money,
	minWeightKg, maxWeightKg *float64,
	freeShippingThreshold *kernel.Money,
	active bool,
	priority int,
) (*ShippingRate, error) {
	r := &ShippingRate{
		active:        active,
		priority:      priority,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setZoneID(zoneID),
		r.setHubID(hubID),
		r.setCourierID(courierID),
		r.setFlatRate(flatRate),
		r.setPerKgRate(perKgRate),
		r.setWeightBounds(minWeightKg, maxWeightKg),
		r.setFreeShippingThreshold(freeShippingThreshold),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the ShippingRate was constructed through NewShippingRate.
func (r *ShippingRate) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrShippingRateIsNotConstructed
	}
	return nil
}

// ID returns the rate's unique identifier.
func (r *ShippingRate) ID() kernel.UUID {
	return r.id
}

// ZoneID returns the zone the rate applies to.
func (r *ShippingRate) ZoneID() kernel.UUID {
	return r.zoneID
}

// HubID returns the hub scope, nil for zone-wide rates.
func (r *ShippingRate) HubID() *kernel.UUID {
	return r.hubID
}

// CourierID returns the courier scope, nil for any courier.
func (r *ShippingRate) CourierID() *kernel.UUID {
	return r.courierID
}

// FlatRate returns the fixed component of the price.
func (r *ShippingRate) FlatRate() kernel.Money {
	return r.flatRate
}

// PerKgRate returns the variable component of the price, zero when unset.
func (r *ShippingRate) PerKgRate() kernel.Money {
	return r.perKgRate
}

// FreeShippingThreshold returns the order value at which the cost is waived,
// nil when the rate has no waiver.
func (r *ShippingRate) FreeShippingThreshold() *kernel.Money {
	return r.freeShippingThreshold
}

// IsActive reports whether the rate currently applies.
func (r *ShippingRate) IsActive() bool {
	return r.active
}

// Priority returns the rate's priority rank. Higher governs.
func (r *ShippingRate) Priority() int {
	return r.priority
}

// MinWeightKg returns the lower weight bound, nil when unbounded.
func (r *ShippingRate) MinWeightKg() *float64 {
	return r.minWeightKg
}

// MaxWeightKg returns the upper weight bound, nil when unbounded.
func (r *ShippingRate) MaxWeightKg() *float64 {
	return r.maxWeightKg
}

// MatchesWeight reports whether totalWeight lies within the rate's optional
// weight bounds.
func (r *ShippingRate) MatchesWeight(totalWeightKg float64) bool {
	if r.minWeightKg != nil && totalWeightKg < *r.minWeightKg {
		return false
	}
	if r.maxWeightKg != nil && totalWeightKg > *r.maxWeightKg {
		return false
	}
	return true
}

// CostFor prices a hub group: flatRate + perKgRate × totalWeight, rounded to
// two decimals. When the free-shipping threshold is set and the order value
// reaches it, the whole cost is waived, not discounted.
func (r *ShippingRate) CostFor(totalWeightKg float64, orderValue kernel.Money) kernel.Money {
	if r.freeShippingThreshold != nil && orderValue.GreaterOrEqual(*r.freeShippingThreshold) {
		return kernel.ZeroMoney()
	}
	return r.flatRate.Add(r.perKgRate.MulFloat(totalWeightKg))
}

func (r *ShippingRate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *ShippingRate) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	r.zoneID = zoneID
	return nil
}

func (r *ShippingRate) setHubID(hubID *kernel.UUID) error {
	if hubID != nil {
		if err := hubID.Validate(); err != nil {
			return err
		}
	}
	r.hubID = hubID
	return nil
}

func (r *ShippingRate) setCourierID(courierID *kernel.UUID) error {
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	r.courierID = courierID
	return nil
}

func (r *ShippingRate) setFlatRate(flatRate kernel.Money) error {
	if err := flatRate.Validate(); err != nil {
		return err
	}
	r.flatRate = flatRate
	return nil
}

func (r *ShippingRate) setPerKgRate(perKgRate kernel.Money) error {
	if err := perKgRate.Validate(); err != nil {
		return err
	}
	r.perKgRate = perKgRate
	return nil
}

func (r *ShippingRate) setWeightBounds(minWeightKg, maxWeightKg *float64) error {
	if minWeightKg != nil && *minWeightKg < 0 {
		return errs.NewValueIsInvalidError("minWeightKg")
	}
	if maxWeightKg != nil && *maxWeightKg <= 0 {
		return errs.NewValueIsInvalidError("maxWeightKg")
	}
	if minWeightKg != nil && maxWeightKg != nil && *minWeightKg > *maxWeightKg {
		return errs.NewValueIsInvalidErrorWithCause("minWeightKg",
			fmt.Errorf("min %f exceeds max %f", *minWeightKg, *maxWeightKg))
	}
	r.minWeightKg = minWeightKg
	r.maxWeightKg = maxWeightKg
	return nil
}

func (r *ShippingRate) setFreeShippingThreshold(threshold *kernel.Money) error {
	if threshold != nil {
		if err := threshold.Validate(); err != nil {
			return err
		}
	}
	r.freeShippingThreshold = threshold
	return nil
}
