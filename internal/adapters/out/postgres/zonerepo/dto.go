// Package zonerepo provides data transfer objects and mapping functions for
// zone persistence. Zones are small reference data, so lookups load the full
// set and filter in memory.
package zonerepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/zone"

	"github.com/google/uuid"
)

// ZoneDTO represents the database structure for persisting zones. The
// covered states are stored as a JSON array since the set is tiny and only
// ever matched in memory.
type ZoneDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	Code          string   `gorm:"uniqueIndex"`
	States        []string `gorm:"serializer:json"`
	EstimatedDays int
}

// TableName specifies the database table name for zone entities.
func (ZoneDTO) TableName() string {
	return "zones"
}

func fromDomain(z *zone.Zone) ZoneDTO {
	return ZoneDTO{
		ID:            z.ID().Bytes(),
		Name:          z.Name(),
		Code:          z.Code(),
		States:        z.States(),
		EstimatedDays: z.EstimatedDeliveryDays(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, dto.Code, dto.States, dto.EstimatedDays)
}
