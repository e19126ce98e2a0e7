// Package notify delivers shipment status notifications.
package notify

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// LogDispatcher writes status-change notifications to the structured log.
// It stands in for a real customer-facing channel until one is wired.
type LogDispatcher struct {
	logger *slog.Logger
}

// NewLogDispatcher creates a dispatcher that logs every notification.
func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{
		logger: logger.With("component", "notify"),
	}
}

// SubOrderStatusChanged logs the status change at info level.
func (d *LogDispatcher) SubOrderStatusChanged(
	ctx context.Context,
	orderID, subOrderID kernel.UUID,
	oldStatus, newStatus order.DeliveryStatus,
) error {
	d.logger.InfoContext(ctx, "shipment status changed",
		"orderID", orderID.String(),
		"subOrderID", subOrderID.String(),
		"from", oldStatus.String(),
		"to", newStatus.String())

	return nil
}
