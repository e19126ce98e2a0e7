package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetUnassignedSubOrdersQueryIsNotConstructed = errors.New(
	"GetUnassignedSubOrdersQuery must be created via NewGetUnassignedSubOrdersQuery constructor",
)

// GetUnassignedSubOrdersQuery retrieves shipments still waiting for a
// courier. The assignment job drains this list on every tick.
//
// Example:
//
//	query := NewGetUnassignedSubOrdersQuery()
//	handler := NewGetUnassignedSubOrdersQueryHandler(db)
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unassigned shipments: %w", err)
//	}
//
//	fmt.Printf("%d shipments awaiting assignment\n", len(pending))
type GetUnassignedSubOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnassignedSubOrdersQuery creates a query for shipments without a
// courier. This is a parameterless query.
func NewGetUnassignedSubOrdersQuery() GetUnassignedSubOrdersQuery {
	return GetUnassignedSubOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUnassignedSubOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUnassignedSubOrdersQueryIsNotConstructed)
}

// GetUnassignedSubOrdersQueryResponse identifies a shipment awaiting
// courier assignment. HubID is nil for shipments fulfilled directly.
type GetUnassignedSubOrdersQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	HubID          *kernel.UUID
	TrackingNumber string
}
