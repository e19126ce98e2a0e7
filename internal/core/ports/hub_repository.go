package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/hub"
	"fulfillment/internal/core/domain/model/kernel"
)

// HubRepository defines the persistence contract for fulfillment hubs and
// their courier links.
type HubRepository interface {
	// Add persists a new hub.
	Add(ctx context.Context, aggregate *hub.Hub) error

	// Get retrieves a hub by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error)

	// AddHubCourier persists a hub-courier link.
	AddHubCourier(ctx context.Context, link *courier.HubCourier) error

	// GetHubCouriers retrieves the hub's courier links ordered by the
	// selection policy: primary first, then priority descending. Returns
	// an empty slice for a hub with no links.
	GetHubCouriers(ctx context.Context, hubID kernel.UUID) ([]*courier.HubCourier, error)
}
