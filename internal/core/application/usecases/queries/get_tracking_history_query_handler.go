package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingHistoryQueryHandler reads a shipment's tracking events from
// the database in chronological order.
//
// Example:
//
//	handler := NewGetTrackingHistoryQueryHandler(db)
//	query, _ := NewGetTrackingHistoryQuery(subOrderID)
//
//	events, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get tracking history: %v", err)
//	    return err
//	}
type GetTrackingHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackingHistoryQueryHandler creates a handler for tracking history
// queries. Requires a GORM database connection.
func NewGetTrackingHistoryQueryHandler(db *gorm.DB) GetTrackingHistoryQueryHandler {
	return GetTrackingHistoryQueryHandler{db: db}
}

// Handle returns the shipment's events ordered by occurrence time, oldest
// first. A shipment with no recorded events yields an empty slice.
func (h GetTrackingHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingHistoryQuery,
) ([]GetTrackingHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	events := make([]GetTrackingHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			description,
			location,
			source,
			occurred_at
		FROM tracking_events
		WHERE sub_order_id = ?
		ORDER BY occurred_at, id
	`, query.SubOrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var event GetTrackingHistoryQueryResponse
		var id uuid.UUID
		var status string
		var occurredAt time.Time

		err = rows.Scan(
			&id,
			&status,
			&event.Description,
			&event.Location,
			&event.Source,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		event.ID = eventID

		eventStatus, statusErr := order.DeliveryStatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		event.Status = eventStatus
		event.OccurredAt = occurredAt

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
