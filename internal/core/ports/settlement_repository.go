package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settlement"
)

// SettlementRepository defines the persistence contract for courier
// settlements and their line items.
type SettlementRepository interface {
	// Add persists a new settlement with its items.
	Add(ctx context.Context, aggregate *settlement.Settlement) error

	// Update persists changes to an existing settlement.
	Update(ctx context.Context, aggregate *settlement.Settlement) error

	// Get retrieves a settlement with its items. Returns
	// errs.ObjectNotFoundError when the settlement does not exist.
	Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error)
}
