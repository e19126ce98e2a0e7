package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSplitOrderCommandIsNotConstructed = errors.New(
		"SplitOrderCommand must be created via NewSplitOrderCommand constructor",
	)
	ErrCustomerNameIsRequired  = errors.New("customer name is required")
	ErrDeliveryStateIsRequired = errors.New("delivery state is required")
	ErrItemsAreRequired        = errors.New("at least one item is required")
)

// SplitOrderCommand represents an inbound storefront order to ingest: the
// customer, the delivery address, the line items, and the amounts already
// charged. Handling it creates the main order and one sub-order per
// (hub, vendor) item group.
//
// Example:
//
//	cmd, err := NewSplitOrderCommand(kernel.NewUUID(),
//	    "Ada Obi", "ada@example.com", "",
//	    "12 Airport Rd", "Warri", "Delta",
//	    items, shippingFee, order.PaymentPaid)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	subOrders, err := handler.Handle(ctx, cmd)
type SplitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	customerName  string
	customerEmail string
	customerPhone string

	deliveryStreet string
	deliveryCity   string
	deliveryState  string

	items           []order.Item
	shippingFeePaid kernel.Money
	paymentStatus   order.PaymentStatus

	guard guard.ConstructorGuard
}

// NewSplitOrderCommand creates a command to ingest and split an order.
// Validates that the order ID is valid, customer name and delivery state are
// present, at least one item is given, and the fee and payment status are
// well-formed. Email, phone, street, and city are optional.
func NewSplitOrderCommand(
	orderID kernel.UUID,
	customerName, customerEmail, customerPhone string,
	deliveryStreet, deliveryCity, deliveryState string,
	items []order.Item,
	shippingFeePaid kernel.Money,
	paymentStatus order.PaymentStatus,
) (SplitOrderCommand, error) {
	cmd := SplitOrderCommand{
		customerEmail:  customerEmail,
		customerPhone:  customerPhone,
		deliveryStreet: deliveryStreet,
		deliveryCity:   deliveryCity,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerName(customerName),
		cmd.setDeliveryState(deliveryState),
		cmd.setItems(items),
		cmd.setShippingFeePaid(shippingFeePaid),
		cmd.setPaymentStatus(paymentStatus),
	); err != nil {
		return SplitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSplitOrderCommandIsNotConstructed if validation fails.
func (c SplitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSplitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the main order will be created under.
func (c SplitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the customer's display name.
func (c SplitOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerEmail returns the customer's email, may be empty.
func (c SplitOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerPhone returns the customer's phone, may be empty.
func (c SplitOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryStreet returns the street line of the delivery address.
func (c SplitOrderCommand) DeliveryStreet() string {
	return c.deliveryStreet
}

// DeliveryCity returns the city of the delivery address.
func (c SplitOrderCommand) DeliveryCity() string {
	return c.deliveryCity
}

// DeliveryState returns the state used for zone resolution.
func (c SplitOrderCommand) DeliveryState() string {
	return c.deliveryState
}

// Items returns a copy of the order's line items.
func (c SplitOrderCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

// ShippingFeePaid returns the shipping fee the customer was charged.
func (c SplitOrderCommand) ShippingFeePaid() kernel.Money {
	return c.shippingFeePaid
}

// PaymentStatus returns the order's payment state at ingest.
func (c SplitOrderCommand) PaymentStatus() order.PaymentStatus {
	return c.paymentStatus
}

// Subtotal returns the sum of the item subtotals.
func (c SplitOrderCommand) Subtotal() kernel.Money {
	subtotal := kernel.ZeroMoney()
	for _, item := range c.items {
		subtotal = subtotal.Add(item.Subtotal())
	}
	return subtotal
}

func (c *SplitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SplitOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = name
	return nil
}

func (c *SplitOrderCommand) setDeliveryState(state string) error {
	if state == "" {
		return ErrDeliveryStateIsRequired
	}

	c.deliveryState = state
	return nil
}

func (c *SplitOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *SplitOrderCommand) setShippingFeePaid(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}

	c.shippingFeePaid = fee
	return nil
}

func (c *SplitOrderCommand) setPaymentStatus(status order.PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.paymentStatus = status
	return nil
}
