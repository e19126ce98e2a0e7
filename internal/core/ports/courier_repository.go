package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier. The courier must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier. Returns
	// errs.ObjectNotFoundError when the courier does not exist.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
}
