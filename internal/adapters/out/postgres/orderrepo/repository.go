package orderrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/settlement"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// AddSubOrder saves a new sub-order with its items and tracking events.
func (r *GormOrderRepository) AddSubOrder(ctx context.Context, aggregate *order.SubOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := subOrderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	items := itemsFromDomain(aggregate)
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	return r.saveEvents(ctx, aggregate)
}

// UpdateSubOrder saves sub-order changes and any events appended since the
// aggregate was loaded. Item rows are immutable after the split and are not
// rewritten.
func (r *GormOrderRepository) UpdateSubOrder(ctx context.Context, aggregate *order.SubOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := subOrderFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SubOrderDTO{}).
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

	return r.saveEvents(ctx, aggregate)
}

// saveEvents inserts the aggregate's tracking events, skipping rows that
// are already persisted.
func (r *GormOrderRepository) saveEvents(ctx context.Context, aggregate *order.SubOrder) error {
	events := aggregate.Events()
	if len(events) == 0 {
		return nil
	}

	dtos := make([]TrackingEventDTO, 0, len(events))
	for _, event := range events {
		dtos = append(dtos, eventFromDomain(event))
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dtos).Error
}

// GetSubOrder retrieves a sub-order with its items and full event log.
func (r *GormOrderRepository) GetSubOrder(ctx context.Context, id kernel.UUID) (*order.SubOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subOrder", id.String())
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

// GetSubOrdersByOrder retrieves every sub-order of a main order.
func (r *GormOrderRepository) GetSubOrdersByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.SubOrder, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SubOrderDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.hydrateAll(ctx, dtos)
}

// GetUnassignedSubOrders retrieves pending sub-orders without a courier,
// oldest first, up to limit. A non-positive limit returns the full backlog.
func (r *GormOrderRepository) GetUnassignedSubOrders(
	ctx context.Context,
	limit int,
) ([]*order.SubOrder, error) {
	query := r.db.WithContext(ctx).
		Where("status = ? AND courier_id IS NULL", order.DeliveryPending.String()).
		Order("created_at, id")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []SubOrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.hydrateAll(ctx, dtos)
}

// GetSubOrdersEligibleForSettlement retrieves the courier's payable
// shipments inside the window that no live settlement references yet.
func (r *GormOrderRepository) GetSubOrdersEligibleForSettlement(
	ctx context.Context,
	courierID kernel.UUID,
	periodStart, periodEnd time.Time,
) ([]*order.SubOrder, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SubOrderDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Where("settlement_status IN ?", []string{
			order.SettlementPending.String(),
			order.SettlementApproved.String(),
		}).
		Where("status IN ?", []string{
			order.DeliveryDelivered.String(),
			order.DeliveryInTransit.String(),
		}).
		Where("COALESCE(delivered_at, updated_at) BETWEEN ? AND ?", periodStart, periodEnd).
		Where(`id NOT IN (
			SELECT si.sub_order_id FROM settlement_items si
			JOIN settlements s ON s.id = si.settlement_id
			WHERE s.status <> ?
		)`, settlement.StatusVoided.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.hydrateAll(ctx, dtos)
}

// GetAllSubOrdersByCourier retrieves every sub-order ever assigned to the
// courier.
func (r *GormOrderRepository) GetAllSubOrdersByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]*order.SubOrder, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SubOrderDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ?", courierID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.hydrateAll(ctx, dtos)
}

// hydrate loads the sub-order's items and events and rebuilds the aggregate.
func (r *GormOrderRepository) hydrate(ctx context.Context, dto SubOrderDTO) (*order.SubOrder, error) {
	var itemDTOs []SubOrderItemDTO
	err := r.db.WithContext(ctx).
		Where("sub_order_id = ?", dto.ID).
		Order("product_id").
		Find(&itemDTOs).Error
	if err != nil {
		return nil, err
	}

	var eventDTOs []TrackingEventDTO
	err = r.db.WithContext(ctx).
		Where("sub_order_id = ?", dto.ID).
		Order("occurred_at, created_at").
		Find(&eventDTOs).Error
	if err != nil {
		return nil, err
	}

	return subOrderToDomain(dto, itemDTOs, eventDTOs)
}

func (r *GormOrderRepository) hydrateAll(ctx context.Context, dtos []SubOrderDTO) ([]*order.SubOrder, error) {
	subOrders := make([]*order.SubOrder, 0, len(dtos))
	for _, dto := range dtos {
		so, err := r.hydrate(ctx, dto)
		if err != nil {
			return nil, err
		}
		subOrders = append(subOrders, so)
	}
	return subOrders, nil
}
