package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// TrackingUpdate is one status report pulled from an upstream courier feed.
type TrackingUpdate struct {
	SubOrderID  kernel.UUID
	Status      order.DeliveryStatus
	Description string
	Location    string
	OccurredAt  time.Time
}

// TrackingSource pulls shipment status updates from courier systems. The
// sync job polls it on a schedule and records each update through the
// tracking command.
type TrackingSource interface {
	// FetchUpdates returns the updates accumulated since the last poll.
	// An empty slice means nothing new.
	FetchUpdates(ctx context.Context) ([]TrackingUpdate, error)
}
