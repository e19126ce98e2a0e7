// Package ports defines repository and outbound interfaces for the
// fulfillment domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/zone"
)

// ZoneRepository defines the persistence contract for shipping zones.
type ZoneRepository interface {
	// Add persists a new zone. The zone must be valid and must not claim a
	// state already covered by another zone (zone.ErrZonesOverlap).
	Add(ctx context.Context, aggregate *zone.Zone) error

	// GetAll retrieves every configured zone.
	GetAll(ctx context.Context) ([]*zone.Zone, error)

	// GetByState resolves the zone covering a delivery state. Matching is
	// case-insensitive. Returns errs.ObjectNotFoundError when no zone
	// claims the state.
	GetByState(ctx context.Context, state string) (*zone.Zone, error)
}
