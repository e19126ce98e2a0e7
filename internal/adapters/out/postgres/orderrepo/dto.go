// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. A main order maps to one orders row; each
// sub-order maps to a sub_orders row plus its item rows and tracking event
// rows, and is always rehydrated with the full event log so the aggregate
// can re-derive its delivery status.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting main orders.
type OrderDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerName   string
	CustomerEmail  string
	CustomerPhone  string
	DeliveryStreet string
	DeliveryCity   string
	DeliveryState  string
	ZoneID         uuid.UUID `gorm:"type:uuid"`

	Subtotal        float64
	ShippingFeePaid float64
	Total           float64

	PaymentStatus string
	Status        string `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// SubOrderDTO represents the database structure for persisting sub-orders.
// The delivery status column is denormalized from the tracking event log.
type SubOrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;index"`
	HubID     *uuid.UUID `gorm:"type:uuid;index"`
	VendorID  *uuid.UUID `gorm:"type:uuid"`
	CourierID *uuid.UUID `gorm:"type:uuid;index"`

	Subtotal             float64
	AllocatedShippingFee float64
	ShippingCost         float64

	TrackingNumber string `gorm:"uniqueIndex"`
	Status         string `gorm:"index"`

	PickedUpAt       *time.Time
	InTransitAt      *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FailedAt         *time.Time

	SettlementStatus  string `gorm:"index"`
	SettlementDate    *time.Time
	PaymentReference  string
	CourierPaidAmount *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for sub-order entities.
func (SubOrderDTO) TableName() string {
	return "sub_orders"
}

// SubOrderItemDTO represents one line item of a sub-order.
type SubOrderItemDTO struct {
	SubOrderID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	HubID      *uuid.UUID `gorm:"type:uuid"`
	VendorID   *uuid.UUID `gorm:"type:uuid"`
	Quantity   int
	UnitPrice  float64
	WeightKg   float64
}

// TableName specifies the database table name for sub-order items.
func (SubOrderItemDTO) TableName() string {
	return "sub_order_items"
}

// TrackingEventDTO represents one tracking event of a sub-order.
type TrackingEventDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubOrderID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Description string
	Location    string
	Source      string
	OccurredAt  time.Time `gorm:"index"`
	CreatedAt   time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID().Bytes(),
		CustomerName:    o.CustomerName(),
		CustomerEmail:   o.CustomerEmail(),
		CustomerPhone:   o.CustomerPhone(),
		DeliveryStreet:  o.DeliveryStreet(),
		DeliveryCity:    o.DeliveryCity(),
		DeliveryState:   o.DeliveryState(),
		ZoneID:          o.ZoneID().Bytes(),
		Subtotal:        o.Subtotal().Amount(),
		ShippingFeePaid: o.ShippingFeePaid().Amount(),
		Total:           o.Total().Amount(),
		PaymentStatus:   string(o.PaymentStatus()),
		Status:          o.Status().String(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	zoneID, err := kernel.UUIDFromBytes(dto.ZoneID[:])
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	shippingFeePaid, err := kernel.NewMoney(dto.ShippingFeePaid)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName, dto.CustomerEmail, dto.CustomerPhone,
		dto.DeliveryStreet, dto.DeliveryCity, dto.DeliveryState,
		zoneID,
		subtotal, shippingFeePaid, total,
		order.PaymentStatus(dto.PaymentStatus),
		status,
	)
}

func subOrderFromDomain(so *order.SubOrder) SubOrderDTO {
	dto := SubOrderDTO{
		ID:                   so.ID().Bytes(),
		OrderID:              so.OrderID().Bytes(),
		Subtotal:             so.Subtotal().Amount(),
		AllocatedShippingFee: so.AllocatedShippingFee().Amount(),
		ShippingCost:         so.ShippingCost().Amount(),
		TrackingNumber:       so.TrackingNumber(),
		Status:               so.Status().String(),
		PickedUpAt:           so.PickedUpAt(),
		InTransitAt:          so.InTransitAt(),
		OutForDeliveryAt:     so.OutForDeliveryAt(),
		DeliveredAt:          so.DeliveredAt(),
		FailedAt:             so.FailedAt(),
		SettlementStatus:     so.SettlementStatus().String(),
		SettlementDate:       so.SettlementDate(),
		PaymentReference:     so.PaymentReference(),
	}

	if hubID := so.HubID(); hubID != nil {
		raw := hubID.Bytes()
		dto.HubID = &raw
	}
	if vendorID := so.VendorID(); vendorID != nil {
		raw := vendorID.Bytes()
		dto.VendorID = &raw
	}
	if courierID := so.CourierID(); courierID != nil {
		raw := courierID.Bytes()
		dto.CourierID = &raw
	}
	if paid := so.CourierPaidAmount(); paid != nil {
		amount := paid.Amount()
		dto.CourierPaidAmount = &amount
	}

	return dto
}

func itemsFromDomain(so *order.SubOrder) []SubOrderItemDTO {
	items := so.Items()
	dtos := make([]SubOrderItemDTO, 0, len(items))
	for _, item := range items {
		dto := SubOrderItemDTO{
			SubOrderID: so.ID().Bytes(),
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Amount(),
			WeightKg:   item.WeightKg(),
		}
		if hubID := item.HubID(); hubID != nil {
			raw := hubID.Bytes()
			dto.HubID = &raw
		}
		if vendorID := item.VendorID(); vendorID != nil {
			raw := vendorID.Bytes()
			dto.VendorID = &raw
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func eventFromDomain(e *order.TrackingEvent) TrackingEventDTO {
	return TrackingEventDTO{
		ID:          e.ID().Bytes(),
		SubOrderID:  e.SubOrderID().Bytes(),
		Status:      e.Status().String(),
		Description: e.Description(),
		Location:    e.Location(),
		Source:      string(e.Source()),
		OccurredAt:  e.OccurredAt(),
	}
}

func itemToDomain(dto SubOrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}

	var hubID, vendorID *kernel.UUID
	if dto.HubID != nil {
		id, hubErr := kernel.UUIDFromBytes(dto.HubID[:])
		if hubErr != nil {
			return order.Item{}, hubErr
		}
		hubID = &id
	}
	if dto.VendorID != nil {
		id, vendorErr := kernel.UUIDFromBytes(dto.VendorID[:])
		if vendorErr != nil {
			return order.Item{}, vendorErr
		}
		vendorID = &id
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, hubID, vendorID, dto.Quantity, unitPrice, dto.WeightKg)
}

func eventToDomain(dto TrackingEventDTO) (*order.TrackingEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	subOrderID, err := kernel.UUIDFromBytes(dto.SubOrderID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.NewTrackingEvent(
		id, subOrderID, status,
		dto.Description, dto.Location,
		order.EventSource(dto.Source), dto.OccurredAt,
	)
}

func subOrderToDomain(
	dto SubOrderDTO,
	itemDTOs []SubOrderItemDTO,
	eventDTOs []TrackingEventDTO,
) (*order.SubOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var hubID, vendorID, courierID *kernel.UUID
	if dto.HubID != nil {
		hid, hubErr := kernel.UUIDFromBytes(dto.HubID[:])
		if hubErr != nil {
			return nil, hubErr
		}
		hubID = &hid
	}
	if dto.VendorID != nil {
		vid, vendorErr := kernel.UUIDFromBytes(dto.VendorID[:])
		if vendorErr != nil {
			return nil, vendorErr
		}
		vendorID = &vid
	}
	if dto.CourierID != nil {
		cid, courierErr := kernel.UUIDFromBytes(dto.CourierID[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cid
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	events := make([]*order.TrackingEvent, 0, len(eventDTOs))
	for _, eventDTO := range eventDTOs {
		event, eventErr := eventToDomain(eventDTO)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	allocatedFee, err := kernel.NewMoney(dto.AllocatedShippingFee)
	if err != nil {
		return nil, err
	}
	shippingCost, err := kernel.NewMoney(dto.ShippingCost)
	if err != nil {
		return nil, err
	}

	status, err := order.DeliveryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	settlementStatus, err := order.SettlementStatusFromString(dto.SettlementStatus)
	if err != nil {
		return nil, err
	}

	var courierPaidAmount *kernel.Money
	if dto.CourierPaidAmount != nil {
		m, paidErr := kernel.NewMoney(*dto.CourierPaidAmount)
		if paidErr != nil {
			return nil, paidErr
		}
		courierPaidAmount = &m
	}

	return order.RestoreSubOrder(order.RestoreSubOrderParams{
		ID:                   id,
		OrderID:              orderID,
		HubID:                hubID,
		VendorID:             vendorID,
		CourierID:            courierID,
		Items:                items,
		AllocatedShippingFee: allocatedFee,
		ShippingCost:         shippingCost,
		TrackingNumber:       dto.TrackingNumber,
		Status:               status,
		PickedUpAt:           dto.PickedUpAt,
		InTransitAt:          dto.InTransitAt,
		OutForDeliveryAt:     dto.OutForDeliveryAt,
		DeliveredAt:          dto.DeliveredAt,
		FailedAt:             dto.FailedAt,
		SettlementStatus:     settlementStatus,
		SettlementDate:       dto.SettlementDate,
		PaymentReference:     dto.PaymentReference,
		CourierPaidAmount:    courierPaidAmount,
		Events:               events,
	})
}
