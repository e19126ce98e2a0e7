package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// PaymentStatus tracks what the customer paid for the order.
type PaymentStatus string

const (
	// PaymentPending indicates payment has not been confirmed yet.
	PaymentPending PaymentStatus = "pending"

	// PaymentPaid indicates the payment gateway confirmed the charge.
	PaymentPaid PaymentStatus = "paid"

	// PaymentFailed indicates the charge was declined.
	PaymentFailed PaymentStatus = "failed"

	// PaymentRefunded indicates the charge was returned to the customer.
	PaymentRefunded PaymentStatus = "refunded"
)

// Validate checks that the PaymentStatus is one of the defined states.
func (p PaymentStatus) Validate() error {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentStatus is invalid", fmt.Errorf("%q is not a valid payment status", string(p)))
	}
}

// Order is the main order aggregate, created once per storefront checkout.
// It carries the customer contact, the delivery address, the resolved zone,
// the paid amounts, and the overall status. Orders are mutated only through
// status transitions and are never deleted except by explicit administrative
// purge, which cascades to sub-orders and tracking events.
//
// Invariants:
//   - Must have a valid unique identifier and zone reference
//   - Customer name and delivery state must be non-empty
//   - Monetary fields are constructed Money values
type Order struct {
	id            kernel.UUID
	customerName  string
	customerEmail string
	customerPhone string

	deliveryStreet string
	deliveryCity   string
	deliveryState  string
	zoneID         kernel.UUID

	subtotal        kernel.Money
	shippingFeePaid kernel.Money
	total           kernel.Money

	paymentStatus PaymentStatus
	status        Status

	isConstructed bool
}

// NewOrder creates a validated Order in processing status, the state a main
// order enters as soon as the splitter accepts it. Email and phone are
// optional contact fields.
func NewOrder(
	id kernel.UUID,
	customerName, customerEmail, customerPhone string,
	deliveryStreet, deliveryCity, deliveryState string,
	zoneID kernel.UUID,
	subtotal, shippingFeePaid, total kernel.Money,
	paymentStatus PaymentStatus,
) (*Order, error) {
	o := &Order{
		customerEmail:  customerEmail,
		customerPhone:  customerPhone,
		deliveryStreet: deliveryStreet,
		deliveryCity:   deliveryCity,
		status:         StatusProcessing,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setDeliveryState(deliveryState),
		o.setZoneID(zoneID),
		o.setSubtotal(subtotal),
		o.setShippingFeePaid(shippingFeePaid),
		o.setTotal(total),
		o.setPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence with its stored status.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerEmail, customerPhone string,
	deliveryStreet, deliveryCity, deliveryState string,
	zoneID kernel.UUID,
	subtotal, shippingFeePaid, total kernel.Money,
	paymentStatus PaymentStatus,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, customerName, customerEmail, customerPhone,
		deliveryStreet, deliveryCity, deliveryState, zoneID,
		subtotal, shippingFeePaid, total, paymentStatus)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status
	return o, nil
}

// Validate ensures the Order was constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the customer's email, may be empty.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// CustomerPhone returns the customer's phone, may be empty.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// DeliveryStreet returns the street line of the delivery address.
func (o *Order) DeliveryStreet() string {
	return o.deliveryStreet
}

// DeliveryCity returns the city of the delivery address.
func (o *Order) DeliveryCity() string {
	return o.deliveryCity
}

// DeliveryState returns the state of the delivery address.
func (o *Order) DeliveryState() string {
	return o.deliveryState
}

// ZoneID returns the resolved delivery zone.
func (o *Order) ZoneID() kernel.UUID {
	return o.zoneID
}

// Subtotal returns the sum of the order's item subtotals.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// ShippingFeePaid returns the shipping fee the customer paid at checkout.
func (o *Order) ShippingFeePaid() kernel.Money {
	return o.shippingFeePaid
}

// Total returns the grand total charged.
func (o *Order) Total() kernel.Money {
	return o.total
}

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the overall order status.
func (o *Order) Status() Status {
	return o.status
}

// TransitionTo moves the order to next when the lifecycle allows it.
func (o *Order) TransitionTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Cancel moves the order to cancelled. Only pending and processing orders
// can be cancelled.
func (o *Order) Cancel() error {
	return o.TransitionTo(StatusCancelled)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setDeliveryState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("deliveryState")
	}
	o.deliveryState = state
	return nil
}

func (o *Order) setZoneID(zoneID kernel.UUID) error {
	if err := zoneID.Validate(); err != nil {
		return err
	}
	o.zoneID = zoneID
	return nil
}

func (o *Order) setSubtotal(subtotal kernel.Money) error {
	if err := subtotal.Validate(); err != nil {
		return err
	}
	o.subtotal = subtotal
	return nil
}

func (o *Order) setShippingFeePaid(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	o.shippingFeePaid = fee
	return nil
}

func (o *Order) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}
