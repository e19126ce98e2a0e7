// Package settlementrepo provides data transfer objects and mapping
// functions for settlement persistence. A settlement maps to one
// settlements row plus one settlement_items row per covered sub-order.
package settlementrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/settlement"

	"github.com/google/uuid"
)

// SettlementDTO represents the database structure for persisting
// settlement batches.
type SettlementDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;index"`

	PeriodStart time.Time
	PeriodEnd   time.Time
	Total       float64

	Status           string `gorm:"index"`
	PaymentReference string
	PaymentMethod    string
	PaidAt           *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for settlement entities.
func (SettlementDTO) TableName() string {
	return "settlements"
}

// SettlementItemDTO represents one sub-order's share of a settlement batch.
type SettlementItemDTO struct {
	SettlementID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubOrderID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Amount       float64
}

// TableName specifies the database table name for settlement items.
func (SettlementItemDTO) TableName() string {
	return "settlement_items"
}

func fromDomain(s *settlement.Settlement) SettlementDTO {
	return SettlementDTO{
		ID:               s.ID().Bytes(),
		CourierID:        s.CourierID().Bytes(),
		PeriodStart:      s.PeriodStart(),
		PeriodEnd:        s.PeriodEnd(),
		Total:            s.Total().Amount(),
		Status:           s.Status().String(),
		PaymentReference: s.PaymentReference(),
		PaymentMethod:    s.PaymentMethod(),
		PaidAt:           s.PaidAt(),
	}
}

func itemsFromDomain(s *settlement.Settlement) []SettlementItemDTO {
	items := s.Items()
	dtos := make([]SettlementItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, SettlementItemDTO{
			SettlementID: s.ID().Bytes(),
			SubOrderID:   item.SubOrderID().Bytes(),
			Amount:       item.Amount().Amount(),
		})
	}
	return dtos
}

func toDomain(dto SettlementDTO, itemDTOs []SettlementItemDTO) (*settlement.Settlement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	items := make([]settlement.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		subOrderID, itemErr := kernel.UUIDFromBytes(itemDTO.SubOrderID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		amount, itemErr := kernel.NewMoney(itemDTO.Amount)
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := settlement.NewItem(subOrderID, amount)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := settlement.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return settlement.RestoreSettlement(
		id, courierID,
		dto.PeriodStart, dto.PeriodEnd,
		items,
		status,
		dto.PaymentReference, dto.PaymentMethod,
		dto.PaidAt,
	)
}
