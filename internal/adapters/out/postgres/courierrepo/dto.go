// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence.
package courierrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting couriers.
type CourierDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Code        string `gorm:"uniqueIndex"`
	Active      bool
	BaseRate    float64
	SuccessRate float64
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Code:        c.Code(),
		Active:      c.IsActive(),
		BaseRate:    c.BaseRate().Amount(),
		SuccessRate: c.SuccessRate(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	baseRate, err := kernel.NewMoney(dto.BaseRate)
	if err != nil {
		return nil, err
	}

	return courier.NewCourier(id, dto.Name, dto.Code, dto.Active, baseRate, dto.SuccessRate)
}
