package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for main orders, their
// sub-orders, and the tracking event log.
//
// Sub-orders are loaded with their complete event log so the aggregate can
// re-derive its denormalized status; UpdateSubOrder persists the sub-order
// row and any events appended since it was loaded.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier. Returns
	// errs.ObjectNotFoundError when the order does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// AddSubOrder persists a new sub-order with its tracking events.
	AddSubOrder(ctx context.Context, aggregate *order.SubOrder) error

	// UpdateSubOrder persists sub-order changes and newly appended events.
	UpdateSubOrder(ctx context.Context, aggregate *order.SubOrder) error

	// GetSubOrder retrieves a sub-order with its event log. Returns
	// errs.ObjectNotFoundError when the sub-order does not exist.
	GetSubOrder(ctx context.Context, id kernel.UUID) (*order.SubOrder, error)

	// GetSubOrdersByOrder retrieves every sub-order of a main order.
	GetSubOrdersByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.SubOrder, error)

	// GetUnassignedSubOrders retrieves pending sub-orders that have a hub
	// but no courier yet. Feeds the assignment job.
	GetUnassignedSubOrders(ctx context.Context, limit int) ([]*order.SubOrder, error)

	// GetSubOrdersEligibleForSettlement retrieves the courier's sub-orders
	// that qualify for payout aggregation inside the window: settlement
	// status pending or approved, delivery status delivered or in transit,
	// and not already referenced by a non-voided settlement.
	GetSubOrdersEligibleForSettlement(
		ctx context.Context, courierID kernel.UUID, periodStart, periodEnd time.Time,
	) ([]*order.SubOrder, error)

	// GetAllSubOrdersByCourier retrieves every sub-order ever assigned to
	// the courier. Feeds the payment statistics aggregate.
	GetAllSubOrdersByCourier(ctx context.Context, courierID kernel.UUID) ([]*order.SubOrder, error)
}
