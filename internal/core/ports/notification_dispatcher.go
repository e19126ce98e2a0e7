package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// NotificationDispatcher receives shipment status changes after they are
// committed. Dispatch is best-effort: callers log failures and never fail
// the triggering operation on a dispatch error.
type NotificationDispatcher interface {
	// SubOrderStatusChanged notifies that a shipment moved between
	// delivery statuses.
	SubOrderStatusChanged(
		ctx context.Context,
		orderID, subOrderID kernel.UUID,
		oldStatus, newStatus order.DeliveryStatus,
	) error
}
