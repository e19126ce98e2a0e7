// Package queries contains read operations for the fulfillment engine.
// Queries never mutate state: pure lookups go through repository ports,
// reporting queries read the database directly for efficiency.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCalculateShippingQueryIsNotConstructed = errors.New(
		"CalculateShippingQuery must be created via NewCalculateShippingQuery constructor",
	)
	ErrShippingStateIsRequired = errors.New("delivery state is required")
	ErrShippingItemsAreRequired = errors.New(
		"at least one item is required to calculate shipping",
	)
)

// CalculateShippingQuery computes the shipping fee for a prospective order
// before it is placed. The caller supplies the delivery state, the cart
// items and the declared order value used for free-shipping thresholds.
//
// Example:
//
//	query, err := NewCalculateShippingQuery("Delta", "Warri", items, orderValue)
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to calculate shipping: %w", err)
//	}
//
//	fmt.Printf("Shipping to %s: %s\n", quote.ZoneName, quote.TotalShippingFee)
//
//nolint:recvcheck //using for validation
type CalculateShippingQuery struct {
	state      string
	city       string
	items      []order.Item
	orderValue kernel.Money

	guard guard.ConstructorGuard
}

// NewCalculateShippingQuery creates a shipping quote query. The city is
// informational and may be empty; state and items are required. The order
// value is the declared merchandise total the threshold waiver is checked
// against.
func NewCalculateShippingQuery(
	state string,
	city string,
	items []order.Item,
	orderValue kernel.Money,
) (CalculateShippingQuery, error) {
	query := CalculateShippingQuery{guard: guard.NewConstructorGuard()}

	if state == "" {
		return CalculateShippingQuery{}, ErrShippingStateIsRequired
	}
	if len(items) == 0 {
		return CalculateShippingQuery{}, ErrShippingItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return CalculateShippingQuery{}, err
		}
	}
	if err := orderValue.Validate(); err != nil {
		return CalculateShippingQuery{}, err
	}

	query.state = state
	query.city = city
	query.items = items
	query.orderValue = orderValue
	return query, nil
}

// State returns the delivery state the zone is resolved from.
func (q CalculateShippingQuery) State() string {
	return q.state
}

// City returns the delivery city, which may be empty.
func (q CalculateShippingQuery) City() string {
	return q.city
}

// Items returns the cart items being quoted.
func (q CalculateShippingQuery) Items() []order.Item {
	return q.items
}

// OrderValue returns the declared merchandise total.
func (q CalculateShippingQuery) OrderValue() kernel.Money {
	return q.orderValue
}

// Validate ensures the query was created through the constructor.
func (q CalculateShippingQuery) Validate() error {
	return q.guard.Validate(ErrCalculateShippingQueryIsNotConstructed)
}

// ShippingQuoteLine is the per-hub portion of a shipping quote.
type ShippingQuoteLine struct {
	HubID         *kernel.UUID
	HubName       string
	ShippingCost  kernel.Money
	ItemCount     int
	TotalWeightKg float64
}

// CalculateShippingQueryResponse is the full quote returned to the caller.
type CalculateShippingQueryResponse struct {
	TotalShippingFee      kernel.Money
	ZoneID                kernel.UUID
	ZoneName              string
	EstimatedDeliveryDays int
	Breakdown             []ShippingQuoteLine
}
