package settlementrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settlement"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSettlementRepository implements SettlementRepository using GORM.
type GormSettlementRepository struct {
	db *gorm.DB
}

// NewGormSettlementRepository creates a new GORM settlement repository.
func NewGormSettlementRepository(db *gorm.DB) *GormSettlementRepository {
	return &GormSettlementRepository{db: db}
}

// Add saves a new settlement batch with its items.
func (r *GormSettlementRepository) Add(ctx context.Context, aggregate *settlement.Settlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	items := itemsFromDomain(aggregate)
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	return nil
}

// Update saves settlement changes. The item set is fixed at creation and is
// not rewritten.
func (r *GormSettlementRepository) Update(ctx context.Context, aggregate *settlement.Settlement) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SettlementDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves a settlement with its items.
func (r *GormSettlementRepository) Get(ctx context.Context, id kernel.UUID) (*settlement.Settlement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SettlementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("settlement", id.String())
		}
		return nil, err
	}

	var itemDTOs []SettlementItemDTO
	err := r.db.WithContext(ctx).
		Where("settlement_id = ?", dto.ID).
		Order("sub_order_id").
		Find(&itemDTOs).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs)
}
