package zonerepo

import (
	"context"

	"fulfillment/internal/core/domain/model/zone"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormZoneRepository implements ZoneRepository using GORM.
type GormZoneRepository struct {
	db *gorm.DB
}

// NewGormZoneRepository creates a new GORM zone repository.
func NewGormZoneRepository(db *gorm.DB) *GormZoneRepository {
	return &GormZoneRepository{db: db}
}

// Add saves a new zone to the database. The new zone must not claim a state
// already covered by a configured zone; state resolution depends on each
// state belonging to exactly one zone.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	existing, err := r.GetAll(ctx)
	if err != nil {
		return err
	}
	if err := zone.ValidateNoOverlap(append(existing, aggregate)); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAll retrieves every configured zone ordered by code.
func (r *GormZoneRepository) GetAll(ctx context.Context) ([]*zone.Zone, error) {
	var dtos []ZoneDTO
	if err := r.db.WithContext(ctx).Order("code").Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// GetByState resolves the zone covering a delivery state. State matching is
// case-insensitive and happens in memory over the full zone set, which
// stays single-digit in practice.
func (r *GormZoneRepository) GetByState(ctx context.Context, state string) (*zone.Zone, error) {
	zones, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, z := range zones {
		if z.ContainsState(state) {
			return z, nil
		}
	}

	return nil, errs.NewObjectNotFoundError("zone", state)
}
