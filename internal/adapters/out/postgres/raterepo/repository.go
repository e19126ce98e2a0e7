package raterepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rate"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateRepository implements RateRepository using GORM.
type GormRateRepository struct {
	db *gorm.DB
}

// NewGormRateRepository creates a new GORM shipping rate repository.
func NewGormRateRepository(db *gorm.DB) *GormRateRepository {
	return &GormRateRepository{db: db}
}

// Add saves a new shipping rate to the database.
func (r *GormRateRepository) Add(ctx context.Context, aggregate *rate.ShippingRate) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// FindActive resolves the governing rate for a zone and optional hub.
// The active row with the highest priority governs; hub-scoped rows win
// over zone-wide rows at equal priority. A nil hubID only matches zone-wide
// rows.
func (r *GormRateRepository) FindActive(
	ctx context.Context,
	zoneID kernel.UUID,
	hubID *kernel.UUID,
) (*rate.ShippingRate, error) {
	query := r.db.WithContext(ctx).
		Where("zone_id = ? AND active", zoneID.Bytes())

	if hubID != nil {
		query = query.
			Where("hub_id = ? OR hub_id IS NULL", hubID.Bytes()).
			Order("priority DESC, hub_id IS NOT NULL DESC")
	} else {
		query = query.Where("hub_id IS NULL").Order("priority DESC")
	}

	var dto ShippingRateDTO
	err := query.First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shippingRate", zoneID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
