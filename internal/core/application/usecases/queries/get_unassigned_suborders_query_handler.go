package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnassignedSubOrdersQueryHandler retrieves pending shipments that have
// no courier yet.
//
// Example:
//
//	handler := NewGetUnassignedSubOrdersQueryHandler(db)
//	query := NewGetUnassignedSubOrdersQuery()
//
//	pending, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unassigned shipments: %v", err)
//	    return err
//	}
type GetUnassignedSubOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetUnassignedSubOrdersQueryHandler creates a handler for unassigned
// shipment queries. Requires a GORM database connection.
func NewGetUnassignedSubOrdersQueryHandler(db *gorm.DB) GetUnassignedSubOrdersQueryHandler {
	return GetUnassignedSubOrdersQueryHandler{db: db}
}

// Handle returns pending shipments without a courier, oldest first, so the
// assignment job works through the backlog in arrival order.
func (h GetUnassignedSubOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUnassignedSubOrdersQuery,
) ([]GetUnassignedSubOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	subOrders := make([]GetUnassignedSubOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			hub_id,
			tracking_number
		FROM sub_orders
		WHERE status = ? AND courier_id IS NULL
		ORDER BY created_at, id
	`, order.DeliveryPending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var subOrderResp GetUnassignedSubOrdersQueryResponse
		var id, orderID uuid.UUID
		var hubID *uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&hubID,
			&subOrderResp.TrackingNumber,
		)
		if err != nil {
			return nil, err
		}

		subOrderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		subOrderResp.ID = subOrderID

		parentID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		subOrderResp.OrderID = parentID

		if hubID != nil {
			hub, idErr := kernel.UUIDFromBytes(hubID[:])
			if idErr != nil {
				return nil, idErr
			}
			subOrderResp.HubID = &hub
		}

		subOrders = append(subOrders, subOrderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return subOrders, nil
}
