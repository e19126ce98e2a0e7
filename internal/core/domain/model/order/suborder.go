package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSubOrderIsNotConstructed is returned when a SubOrder instance was
	// not created through the NewSubOrder or RestoreSubOrder factory methods.
	ErrSubOrderIsNotConstructed = errors.New("SubOrder must be created via NewSubOrder constructor")

	// ErrSubOrderHasNoItems is returned when a sub-order would be created
	// with an empty item list.
	ErrSubOrderHasNoItems = errors.New("sub-order must contain at least one item")

	// ErrSubOrderAlreadySettled is returned when settlement fields are
	// stamped on a sub-order that was already paid out.
	ErrSubOrderAlreadySettled = errors.New("sub-order is already settled")
)

// SubOrder is a hub-scoped shipment derived from a main order. The splitter
// creates one per distinct (hub, vendor) combination among the order's
// items, never with zero items. Its subtotal always equals the sum of its
// item subtotals, and its denormalized delivery status always equals the
// status of its most recent tracking event by event time.
type SubOrder struct {
	id       kernel.UUID
	orderID  kernel.UUID
	hubID    *kernel.UUID
	vendorID *kernel.UUID

	courierID *kernel.UUID

	items                []Item
	subtotal             kernel.Money
	allocatedShippingFee kernel.Money
	shippingCost         kernel.Money

	trackingNumber string
	status         DeliveryStatus

	pickedUpAt       *time.Time
	inTransitAt      *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time
	failedAt         *time.Time

	settlementStatus  SettlementStatus
	settlementDate    *time.Time
	paymentReference  string
	courierPaidAmount *kernel.Money

	events []*TrackingEvent

	isConstructed bool
}

// NewSubOrder creates a validated SubOrder in pending delivery and pending
// settlement status. The subtotal is derived from the items; shippingCost is
// the amount the courier will be owed for the leg.
func NewSubOrder(
	id, orderID kernel.UUID,
	hubID, vendorID *kernel.UUID,
	items []Item,
	allocatedShippingFee, shippingCost kernel.Money,
	trackingNumber string,
) (*SubOrder, error) {
	so := &SubOrder{
		trackingNumber:   trackingNumber,
		status:           DeliveryPending,
		settlementStatus: SettlementPending,
		isConstructed:    true,
	}

	if err := errors.Join(
		so.setID(id),
		so.setOrderID(orderID),
		so.setHubID(hubID),
		so.setVendorID(vendorID),
		so.setItems(items),
		so.setAllocatedShippingFee(allocatedShippingFee),
		so.setShippingCost(shippingCost),
	); err != nil {
		return nil, err
	}

	return so, nil
}

// RestoreSubOrderParams carries every persisted field of a sub-order.
type RestoreSubOrderParams struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	HubID     *kernel.UUID
	VendorID  *kernel.UUID
	CourierID *kernel.UUID

	Items                []Item
	AllocatedShippingFee kernel.Money
	ShippingCost         kernel.Money

	TrackingNumber string
	Status         DeliveryStatus

	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FailedAt         *time.Time

	SettlementStatus  SettlementStatus
	SettlementDate    *time.Time
	PaymentReference  string
	CourierPaidAmount *kernel.Money

	Events []*TrackingEvent
}

// RestoreSubOrder rehydrates a SubOrder from persistence.
func RestoreSubOrder(p RestoreSubOrderParams) (*SubOrder, error) {
	so, err := NewSubOrder(p.ID, p.OrderID, p.HubID, p.VendorID, p.Items,
		p.AllocatedShippingFee, p.ShippingCost, p.TrackingNumber)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(p.Status.Validate(), p.SettlementStatus.Validate()); err != nil {
		return nil, err
	}
	if p.CourierID != nil {
		if err = p.CourierID.Validate(); err != nil {
			return nil, err
		}
	}
	for _, e := range p.Events {
		if err = e.Validate(); err != nil {
			return nil, err
		}
	}

	so.courierID = p.CourierID
	so.status = p.Status
	so.pickedUpAt = p.PickedUpAt
	so.inTransitAt = p.InTransitAt
	so.outForDeliveryAt = p.OutForDeliveryAt
	so.deliveredAt = p.DeliveredAt
	so.failedAt = p.FailedAt
	so.settlementStatus = p.SettlementStatus
	so.settlementDate = p.SettlementDate
	so.paymentReference = p.PaymentReference
	so.courierPaidAmount = p.CourierPaidAmount
	so.events = p.Events

	return so, nil
}

// Validate ensures the SubOrder was constructed through a factory method.
func (so *SubOrder) Validate() error {
	if so == nil || !so.isConstructed {
		return ErrSubOrderIsNotConstructed
	}
	return nil
}

// ID returns the sub-order's unique identifier.
func (so *SubOrder) ID() kernel.UUID {
	return so.id
}

// OrderID returns the parent order reference.
func (so *SubOrder) OrderID() kernel.UUID {
	return so.orderID
}

// HubID returns the hub the shipment leaves from, nil for the default group.
func (so *SubOrder) HubID() *kernel.UUID {
	return so.hubID
}

// VendorID returns the vendor scope of the shipment, nil when not vendor-scoped.
func (so *SubOrder) VendorID() *kernel.UUID {
	return so.vendorID
}

// CourierID returns the assigned courier, nil until assignment.
func (so *SubOrder) CourierID() *kernel.UUID {
	return so.courierID
}

// Items returns a copy of the sub-order's line items.
func (so *SubOrder) Items() []Item {
	out := make([]Item, len(so.items))
	copy(out, so.items)
	return out
}

// Subtotal returns the sum of the item subtotals.
func (so *SubOrder) Subtotal() kernel.Money {
	return so.subtotal
}

// AllocatedShippingFee returns this shipment's share of the fee the customer paid.
func (so *SubOrder) AllocatedShippingFee() kernel.Money {
	return so.allocatedShippingFee
}

// ShippingCost returns the amount owed to the courier for this shipment.
func (so *SubOrder) ShippingCost() kernel.Money {
	return so.shippingCost
}

// TotalWeightKg returns the combined weight of all items.
func (so *SubOrder) TotalWeightKg() float64 {
	var total float64
	for _, item := range so.items {
		total += item.TotalWeightKg()
	}
	return total
}

// TrackingNumber returns the shipment's tracking number.
func (so *SubOrder) TrackingNumber() string {
	return so.trackingNumber
}

// Status returns the current delivery status.
func (so *SubOrder) Status() DeliveryStatus {
	return so.status
}

// PickedUpAt returns when the courier collected the shipment, nil if not yet.
func (so *SubOrder) PickedUpAt() *time.Time { return so.pickedUpAt }

// InTransitAt returns when the shipment entered transit, nil if not yet.
func (so *SubOrder) InTransitAt() *time.Time { return so.inTransitAt }

// OutForDeliveryAt returns when the last leg started, nil if not yet.
func (so *SubOrder) OutForDeliveryAt() *time.Time { return so.outForDeliveryAt }

// DeliveredAt returns when the shipment was delivered, nil if not yet.
func (so *SubOrder) DeliveredAt() *time.Time { return so.deliveredAt }

// FailedAt returns when delivery failed, nil if it did not.
func (so *SubOrder) FailedAt() *time.Time { return so.failedAt }

// SettlementStatus returns what the courier is owed for this shipment.
func (so *SubOrder) SettlementStatus() SettlementStatus {
	return so.settlementStatus
}

// SettlementDate returns when the courier was paid, nil until then.
func (so *SubOrder) SettlementDate() *time.Time {
	return so.settlementDate
}

// PaymentReference returns the payout reference stamped at settlement.
func (so *SubOrder) PaymentReference() string {
	return so.paymentReference
}

// CourierPaidAmount returns the amount actually paid out, nil until settled.
func (so *SubOrder) CourierPaidAmount() *kernel.Money {
	return so.courierPaidAmount
}

// Events returns a copy of the tracking event log.
func (so *SubOrder) Events() []*TrackingEvent {
	out := make([]*TrackingEvent, len(so.events))
	copy(out, so.events)
	return out
}

// LatestEvent returns the most recent event by occurredAt, nil when the log
// is empty. Ties resolve to the later appended event.
func (so *SubOrder) LatestEvent() *TrackingEvent {
	var latest *TrackingEvent
	for _, e := range so.events {
		if latest == nil || !e.OccurredAt().Before(latest.OccurredAt()) {
			latest = e
		}
	}
	return latest
}

// AssignCourier assigns the shipment to a courier and appends the
// auto-assignment tracking event naming it. Assignment is allowed from
// pending and assigned status; re-running overwrites the courier, so callers
// should guard against re-assignment of active shipments where that is
// undesired.
func (so *SubOrder) AssignCourier(courierID kernel.UUID, courierName string, at time.Time) (*TrackingEvent, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}
	if err := so.status.ValidateAssign(); err != nil {
		return nil, err
	}

	event, err := NewTrackingEvent(
		kernel.NewUUID(), so.id, DeliveryAssigned,
		fmt.Sprintf("Assigned to courier %s", courierName),
		"", SourceAutoAssignment, at,
	)
	if err != nil {
		return nil, err
	}

	so.courierID = &courierID
	so.applyEvent(event)
	return event, nil
}

// RecordEvent appends a tracking event and updates the denormalized status
// in the same operation. In strict mode the new status must not regress
// along the progression ordinal; the default accept-any mode records courier
// reports verbatim. The resulting status is always that of the most recent
// event by occurredAt, so a late-arriving event with an old timestamp cannot
// clobber a newer status.
func (so *SubOrder) RecordEvent(
	status DeliveryStatus,
	description, location string,
	source EventSource,
	at time.Time,
	strict bool,
) (*TrackingEvent, error) {
	if strict {
		if err := so.status.ValidateProgression(status); err != nil {
			return nil, err
		}
	}

	event, err := NewTrackingEvent(kernel.NewUUID(), so.id, status, description, location, source, at)
	if err != nil {
		return nil, err
	}

	so.applyEvent(event)
	return event, nil
}

// applyEvent appends the event, re-derives the denormalized status from the
// most recent event, and stamps the milestone timestamp on first occurrence.
func (so *SubOrder) applyEvent(event *TrackingEvent) {
	so.events = append(so.events, event)
	so.status = so.LatestEvent().Status()

	at := event.OccurredAt()
	switch event.Status() {
	case DeliveryPickedUp:
		if so.pickedUpAt == nil {
			so.pickedUpAt = &at
		}
	case DeliveryInTransit:
		if so.inTransitAt == nil {
			so.inTransitAt = &at
		}
	case DeliveryOutForDelivery:
		if so.outForDeliveryAt == nil {
			so.outForDeliveryAt = &at
		}
	case DeliveryDelivered:
		if so.deliveredAt == nil {
			so.deliveredAt = &at
		}
	case DeliveryFailed:
		if so.failedAt == nil {
			so.failedAt = &at
		}
	}
}

// IsEligibleForSettlement reports whether the shipment qualifies for payout
// aggregation: the courier is still owed for it and the shipment is
// delivered or in transit.
func (so *SubOrder) IsEligibleForSettlement() bool {
	return so.settlementStatus.IsPayable() &&
		(so.status == DeliveryDelivered || so.status == DeliveryInTransit)
}

// ApproveSettlement marks the owed amount as operator-approved.
func (so *SubOrder) ApproveSettlement() error {
	if so.settlementStatus != SettlementPending {
		return errs.NewValueIsInvalidErrorWithCause("settlementStatus",
			fmt.Errorf("%s cannot be approved", so.settlementStatus))
	}
	so.settlementStatus = SettlementApproved
	return nil
}

// MarkSettled stamps the payout fields: settlement status paid, settlement
// date, payment reference, and the paid amount equal to the shipping cost.
// Rejects sub-orders that were already paid out.
func (so *SubOrder) MarkSettled(paymentReference string, at time.Time) error {
	if so.settlementStatus == SettlementPaid {
		return ErrSubOrderAlreadySettled
	}
	if paymentReference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}

	paid := so.shippingCost
	so.settlementStatus = SettlementPaid
	so.settlementDate = &at
	so.paymentReference = paymentReference
	so.courierPaidAmount = &paid
	return nil
}

// SetShippingCost replaces the owed amount, used when the real courier
// charge becomes known after quoting.
func (so *SubOrder) SetShippingCost(cost kernel.Money) error {
	return so.setShippingCost(cost)
}

func (so *SubOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	so.id = id
	return nil
}

func (so *SubOrder) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	so.orderID = orderID
	return nil
}

func (so *SubOrder) setHubID(hubID *kernel.UUID) error {
	if hubID != nil {
		if err := hubID.Validate(); err != nil {
			return err
		}
	}
	so.hubID = hubID
	return nil
}

func (so *SubOrder) setVendorID(vendorID *kernel.UUID) error {
	if vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return err
		}
	}
	so.vendorID = vendorID
	return nil
}

func (so *SubOrder) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrSubOrderHasNoItems
	}

	subtotal := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		subtotal = subtotal.Add(item.Subtotal())
	}

	so.items = make([]Item, len(items))
	copy(so.items, items)
	so.subtotal = subtotal
	return nil
}

func (so *SubOrder) setAllocatedShippingFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	so.allocatedShippingFee = fee
	return nil
}

func (so *SubOrder) setShippingCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	so.shippingCost = cost
	return nil
}
