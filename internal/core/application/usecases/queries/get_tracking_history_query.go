package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetTrackingHistoryQueryIsNotConstructed = errors.New(
		"GetTrackingHistoryQuery must be created via NewGetTrackingHistoryQuery constructor",
	)
	ErrTrackingSubOrderIDIsRequired = errors.New("sub-order id is required")
)

// GetTrackingHistoryQuery retrieves the full tracking timeline of a
// shipment, oldest event first.
//
// Example:
//
//	query, err := NewGetTrackingHistoryQuery(subOrderID)
//	if err != nil {
//	    return err
//	}
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking history: %w", err)
//	}
//
//	for _, event := range events {
//	    fmt.Printf("%s  %s  %s\n", event.OccurredAt, event.Status, event.Location)
//	}
//
//nolint:recvcheck //using for validation
type GetTrackingHistoryQuery struct {
	subOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTrackingHistoryQuery creates a tracking history query for the
// given sub-order.
func NewGetTrackingHistoryQuery(subOrderID kernel.UUID) (GetTrackingHistoryQuery, error) {
	if err := subOrderID.Validate(); err != nil {
		return GetTrackingHistoryQuery{}, ErrTrackingSubOrderIDIsRequired
	}

	return GetTrackingHistoryQuery{
		subOrderID: subOrderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// SubOrderID returns the shipment the history is requested for.
func (q GetTrackingHistoryQuery) SubOrderID() kernel.UUID {
	return q.subOrderID
}

// Validate ensures the query was created through the constructor.
func (q GetTrackingHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingHistoryQueryIsNotConstructed)
}

// GetTrackingHistoryQueryResponse is a single entry in a shipment's
// tracking timeline.
type GetTrackingHistoryQueryResponse struct {
	ID          kernel.UUID
	Status      order.DeliveryStatus
	Description string
	Location    string
	Source      order.EventSource
	OccurredAt  time.Time
}
