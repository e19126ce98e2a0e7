package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rate"
)

// RateRepository defines the persistence contract for shipping rates.
type RateRepository interface {
	// Add persists a new shipping rate.
	Add(ctx context.Context, aggregate *rate.ShippingRate) error

	// FindActive resolves the governing rate for a (zone, hub) pair: the
	// active row with the highest priority, hub-scoped rows breaking ties
	// with zone-wide rows. hubID is nil for the hubless default group,
	// which matches zone-wide rows only. Returns errs.ObjectNotFoundError
	// when no active rate covers the pair.
	FindActive(ctx context.Context, zoneID kernel.UUID, hubID *kernel.UUID) (*rate.ShippingRate, error)
}
