// Package hubrepo provides data transfer objects and mapping functions for
// hub persistence, including the hub-courier links the assignment policy
// reads.
package hubrepo

import (
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/hub"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HubDTO represents the database structure for persisting hubs.
type HubDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	City   string
	State  string
	Active bool
}

// TableName specifies the database table name for hub entities.
func (HubDTO) TableName() string {
	return "hubs"
}

// HubCourierDTO represents a hub-courier link row. The pair is the primary
// key; a courier is linked to a hub at most once.
type HubCourierDTO struct {
	HubID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID `gorm:"type:uuid;primaryKey"`
	IsPrimary bool
	Priority  int
}

// TableName specifies the database table name for hub-courier links.
func (HubCourierDTO) TableName() string {
	return "hub_couriers"
}

func fromDomain(h *hub.Hub) HubDTO {
	return HubDTO{
		ID:     h.ID().Bytes(),
		Name:   h.Name(),
		City:   h.City(),
		State:  h.State(),
		Active: h.IsActive(),
	}
}

func toDomain(dto HubDTO) (*hub.Hub, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return hub.NewHub(id, dto.Name, dto.City, dto.State, dto.Active)
}

func linkFromDomain(link *courier.HubCourier) HubCourierDTO {
	return HubCourierDTO{
		HubID:     link.HubID().Bytes(),
		CourierID: link.CourierID().Bytes(),
		IsPrimary: link.IsPrimary(),
		Priority:  link.Priority(),
	}
}

func linkToDomain(dto HubCourierDTO) (*courier.HubCourier, error) {
	hubID, err := kernel.UUIDFromBytes(dto.HubID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return courier.NewHubCourier(hubID, courierID, dto.IsPrimary, dto.Priority)
}
