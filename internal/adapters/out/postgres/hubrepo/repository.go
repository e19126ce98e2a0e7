package hubrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/hub"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHubRepository implements HubRepository using GORM.
type GormHubRepository struct {
	db *gorm.DB
}

// NewGormHubRepository creates a new GORM hub repository.
func NewGormHubRepository(db *gorm.DB) *GormHubRepository {
	return &GormHubRepository{db: db}
}

// Add saves a new hub to the database.
func (r *GormHubRepository) Add(ctx context.Context, aggregate *hub.Hub) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a hub by ID.
func (r *GormHubRepository) Get(ctx context.Context, id kernel.UUID) (*hub.Hub, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HubDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hub", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddHubCourier persists a hub-courier link.
func (r *GormHubRepository) AddHubCourier(ctx context.Context, link *courier.HubCourier) error {
	if err := link.Validate(); err != nil {
		return err
	}

	dto := linkFromDomain(link)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHubCouriers retrieves the hub's courier links in assignment policy
// order: primary links first, then descending priority.
func (r *GormHubRepository) GetHubCouriers(
	ctx context.Context,
	hubID kernel.UUID,
) ([]*courier.HubCourier, error) {
	if err := hubID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HubCourierDTO
	err := r.db.WithContext(ctx).
		Where("hub_id = ?", hubID.Bytes()).
		Order("is_primary DESC, priority DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	links := make([]*courier.HubCourier, 0, len(dtos))
	for _, dto := range dtos {
		link, linkErr := linkToDomain(dto)
		if linkErr != nil {
			return nil, linkErr
		}
		links = append(links, link)
	}

	return links, nil
}
