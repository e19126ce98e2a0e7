// Package raterepo provides data transfer objects and mapping functions for
// shipping rate persistence.
package raterepo

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rate"

	"github.com/google/uuid"
)

// ShippingRateDTO represents the database structure for persisting shipping
// rates. A nil HubID marks a zone-wide rate; hub-scoped rows break priority
// ties with it during lookup. Money amounts are stored as numeric naira
// values.
type ShippingRateDTO struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ZoneID                uuid.UUID  `gorm:"type:uuid;index:idx_rates_lookup"`
	HubID                 *uuid.UUID `gorm:"type:uuid;index:idx_rates_lookup"`
	CourierID             *uuid.UUID `gorm:"type:uuid"`
	FlatRate              float64
	PerKgRate             float64
	MinWeightKg           *float64
	MaxWeightKg           *float64
	FreeShippingThreshold *float64
	Active                bool `gorm:"index:idx_rates_lookup"`
	Priority              int
}

// TableName specifies the database table name for shipping rate entities.
func (ShippingRateDTO) TableName() string {
	return "shipping_rates"
}

func fromDomain(r *rate.ShippingRate) ShippingRateDTO {
	dto := ShippingRateDTO{
		ID:          r.ID().Bytes(),
		ZoneID:      r.ZoneID().Bytes(),
		FlatRate:    r.FlatRate().Amount(),
		PerKgRate:   r.PerKgRate().Amount(),
		MinWeightKg: r.MinWeightKg(),
		MaxWeightKg: r.MaxWeightKg(),
		Active:      r.IsActive(),
		Priority:    r.Priority(),
	}

	if hubID := r.HubID(); hubID != nil {
		raw := hubID.Bytes()
		dto.HubID = &raw
	}
	if courierID := r.CourierID(); courierID != nil {
		raw := courierID.Bytes()
		dto.CourierID = &raw
	}
	if threshold := r.FreeShippingThreshold(); threshold != nil {
		amount := threshold.Amount()
		dto.FreeShippingThreshold = &amount
	}

	return dto
}

func toDomain(dto ShippingRateDTO) (*rate.ShippingRate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	var hubID, courierID *kernel.UUID
	if dto.HubID != nil {
		id, hubErr := kernel.UUIDFromBytes(dto.HubID[:])
		if hubErr != nil {
			return nil, hubErr
		}
		hubID = &id
	}
	if dto.CourierID != nil {
		id, courierErr := kernel.UUIDFromBytes(dto.CourierID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &id
	}

	flatRate, err := kernel.NewMoney(dto.FlatRate)
	if err != nil {
		return nil, err
	}
	perKgRate, err := kernel.NewMoney(dto.PerKgRate)
	if err != nil {
		return nil, err
	}

	var threshold *kernel.Money
	if dto.FreeShippingThreshold != nil {
		m, thresholdErr := kernel.NewMoney(*dto.FreeShippingThreshold)
		if thresholdErr != nil {
			return nil, thresholdErr
		}
		threshold = &m
	}

	return rate.NewShippingRate(
		id, zoneID, hubID, courierID,
		flatRate, perKgRate,
		dto.MinWeightKg, dto.MaxWeightKg,
		threshold,
		dto.Active, dto.Priority,
	)
}
