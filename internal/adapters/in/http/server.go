package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/settlement"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	splitOrderHandler          commands.SplitOrderCommandHandler
	assignCourierHandler       commands.AssignCourierCommandHandler
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler
	createSettlementHandler    commands.CreateSettlementCommandHandler
	markSettlementPaidHandler  commands.MarkSettlementPaidCommandHandler

	// Query handlers
	calculateShippingHandler      queries.CalculateShippingQueryHandler
	getCourierPaymentStatsHandler queries.GetCourierPaymentStatsQueryHandler
	getTrackingHistoryHandler     queries.GetTrackingHistoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	splitOrderHandler commands.SplitOrderCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	recordTrackingEventHandler commands.RecordTrackingEventCommandHandler,
	createSettlementHandler commands.CreateSettlementCommandHandler,
	markSettlementPaidHandler commands.MarkSettlementPaidCommandHandler,
	calculateShippingHandler queries.CalculateShippingQueryHandler,
	getCourierPaymentStatsHandler queries.GetCourierPaymentStatsQueryHandler,
	getTrackingHistoryHandler queries.GetTrackingHistoryQueryHandler,
) *Server {
	return &Server{
		splitOrderHandler:          splitOrderHandler,
		assignCourierHandler:       assignCourierHandler,
		recordTrackingEventHandler: recordTrackingEventHandler,
		createSettlementHandler:    createSettlementHandler,
		markSettlementPaidHandler:  markSettlementPaidHandler,

		calculateShippingHandler:      calculateShippingHandler,
		getCourierPaymentStatsHandler: getCourierPaymentStatsHandler,
		getTrackingHistoryHandler:     getTrackingHistoryHandler,
	}
}

// RegisterRoutes mounts every endpoint on the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	v1 := e.Group("/api/v1")
	v1.POST("/shipping/calculate", s.CalculateShipping)
	v1.POST("/orders", s.CreateOrder)
	v1.POST("/suborders/:id/assign", s.AssignCourier)
	v1.POST("/suborders/:id/events", s.RecordTrackingEvent)
	v1.GET("/suborders/:id/events", s.GetTrackingHistory)
	v1.POST("/settlements", s.CreateSettlement)
	v1.POST("/settlements/:id/pay", s.MarkSettlementPaid)
	v1.GET("/couriers/:id/stats", s.GetCourierPaymentStats)
}

// GetHealth handles GET /health requests.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// ItemRequest is one order line as submitted by the storefront.
type ItemRequest struct {
	ProductID string  `json:"productId"`
	HubID     *string `json:"hubId,omitempty"`
	VendorID  *string `json:"vendorId,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	WeightKg  float64 `json:"weightKg"`
}

// CalculateShippingRequest asks for a shipping quote before checkout.
type CalculateShippingRequest struct {
	State      string        `json:"state"`
	City       string        `json:"city,omitempty"`
	OrderValue float64       `json:"orderValue"`
	Items      []ItemRequest `json:"items"`
}

// ShippingQuoteLineResponse prices one hub group of the quote.
type ShippingQuoteLineResponse struct {
	HubID         *string `json:"hubId,omitempty"`
	HubName       string  `json:"hubName"`
	ShippingCost  float64 `json:"shippingCost"`
	ItemCount     int     `json:"itemCount"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// CalculateShippingResponse is the full quote for a delivery address.
type CalculateShippingResponse struct {
	TotalShippingFee      float64                     `json:"totalShippingFee"`
	ZoneID                string                      `json:"zoneId"`
	ZoneName              string                      `json:"zoneName"`
	EstimatedDeliveryDays int                         `json:"estimatedDeliveryDays"`
	Breakdown             []ShippingQuoteLineResponse `json:"breakdown"`
}

// CalculateShipping handles POST /api/v1/shipping/calculate requests.
// An unserved state or a zone without rates is a caller problem, so both
// map to 400 rather than 404.
func (s *Server) CalculateShipping(ctx echo.Context) error {
	var req CalculateShippingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	orderValue, err := kernel.NewMoney(req.OrderValue)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewCalculateShippingQuery(req.State, req.City, items, orderValue)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	quote, err := s.calculateShippingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, services.ErrRateNotFound) {
			return badRequest(ctx, err.Error())
		}
		return serverError(ctx, err)
	}

	breakdown := make([]ShippingQuoteLineResponse, 0, len(quote.Breakdown))
	for _, line := range quote.Breakdown {
		breakdown = append(breakdown, ShippingQuoteLineResponse{
			HubID:         uuidPtrToString(line.HubID),
			HubName:       line.HubName,
			ShippingCost:  line.ShippingCost.Amount(),
			ItemCount:     line.ItemCount,
			TotalWeightKg: line.TotalWeightKg,
		})
	}

	return ctx.JSON(http.StatusOK, CalculateShippingResponse{
		TotalShippingFee:      quote.TotalShippingFee.Amount(),
		ZoneID:                quote.ZoneID.String(),
		ZoneName:              quote.ZoneName,
		EstimatedDeliveryDays: quote.EstimatedDeliveryDays,
		Breakdown:             breakdown,
	})
}

// CreateOrderRequest ingests a paid order for splitting.
type CreateOrderRequest struct {
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail,omitempty"`
	CustomerPhone   string        `json:"customerPhone,omitempty"`
	DeliveryStreet  string        `json:"deliveryStreet,omitempty"`
	DeliveryCity    string        `json:"deliveryCity,omitempty"`
	DeliveryState   string        `json:"deliveryState"`
	Items           []ItemRequest `json:"items"`
	ShippingFeePaid float64       `json:"shippingFeePaid"`
	PaymentStatus   string        `json:"paymentStatus"`
}

// SubOrderResponse describes one shipment created by the split.
type SubOrderResponse struct {
	ID                   string  `json:"id"`
	OrderID              string  `json:"orderId"`
	HubID                *string `json:"hubId,omitempty"`
	VendorID             *string `json:"vendorId,omitempty"`
	TrackingNumber       string  `json:"trackingNumber"`
	Subtotal             float64 `json:"subtotal"`
	AllocatedShippingFee float64 `json:"allocatedShippingFee"`
	ShippingCost         float64 `json:"shippingCost"`
	Status               string  `json:"status"`
}

// CreateOrderResponse returns the shipments an ingested order was split into.
type CreateOrderResponse struct {
	OrderID   string             `json:"orderId"`
	SubOrders []SubOrderResponse `json:"subOrders"`
}

// CreateOrder handles POST /api/v1/orders requests.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items, err := itemsFromRequest(req.Items)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	shippingFeePaid, err := kernel.NewMoney(req.ShippingFeePaid)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	paymentStatus := order.PaymentStatus(req.PaymentStatus)
	if paymentStatus == "" {
		paymentStatus = order.PaymentPaid
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewSplitOrderCommand(
		orderID,
		req.CustomerName, req.CustomerEmail, req.CustomerPhone,
		req.DeliveryStreet, req.DeliveryCity, req.DeliveryState,
		items, shippingFeePaid, paymentStatus,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	subOrders, err := s.splitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			// Unknown delivery state: the order cannot be zoned.
			return badRequest(ctx, err.Error())
		}
		return serverError(ctx, err)
	}

	resp := CreateOrderResponse{
		OrderID:   orderID.String(),
		SubOrders: make([]SubOrderResponse, 0, len(subOrders)),
	}
	for _, so := range subOrders {
		resp.SubOrders = append(resp.SubOrders, SubOrderResponse{
			ID:                   so.ID().String(),
			OrderID:              so.OrderID().String(),
			HubID:                uuidPtrToString(so.HubID()),
			VendorID:             uuidPtrToString(so.VendorID()),
			TrackingNumber:       so.TrackingNumber(),
			Subtotal:             so.Subtotal().Amount(),
			AllocatedShippingFee: so.AllocatedShippingFee().Amount(),
			ShippingCost:         so.ShippingCost().Amount(),
			Status:               so.Status().String(),
		})
	}

	return ctx.JSON(http.StatusCreated, resp)
}

// AssignCourier handles POST /api/v1/suborders/:id/assign requests.
func (s *Server) AssignCourier(ctx echo.Context) error {
	subOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid sub-order id")
	}

	cmd, err := commands.NewAssignCourierCommand(subOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, err)
		case errors.Is(err, commands.ErrMissingHub),
			errors.Is(err, services.ErrNoCourierAvailable):
			return conflict(ctx, err)
		default:
			return serverError(ctx, err)
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordTrackingEventRequest reports one delivery status change.
type RecordTrackingEventRequest struct {
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Source      string    `json:"source,omitempty"`
	OccurredAt  time.Time `json:"occurredAt,omitempty"`
}

// RecordTrackingEvent handles POST /api/v1/suborders/:id/events requests.
func (s *Server) RecordTrackingEvent(ctx echo.Context) error {
	subOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid sub-order id")
	}

	var req RecordTrackingEventRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.DeliveryStatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	source := order.EventSource(req.Source)
	if source == "" {
		source = order.SourceCourierWebhook
	}

	cmd, err := commands.NewRecordTrackingEventCommand(
		subOrderID, status, req.Description, req.Location, source, req.OccurredAt,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.recordTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, err)
		case errors.Is(err, errs.ErrValueIsOutOfRange):
			// Regressive status rejected in strict progression mode.
			return conflict(ctx, err)
		default:
			return serverError(ctx, err)
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackingEventResponse is one recorded event of a shipment's history.
type TrackingEventResponse struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Source      string    `json:"source"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// GetTrackingHistory handles GET /api/v1/suborders/:id/events requests.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	subOrderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid sub-order id")
	}

	query, err := queries.NewGetTrackingHistoryQuery(subOrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	events, err := s.getTrackingHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return serverError(ctx, err)
	}

	resp := make([]TrackingEventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, TrackingEventResponse{
			ID:          event.ID.String(),
			Status:      event.Status.String(),
			Description: event.Description,
			Location:    event.Location,
			Source:      string(event.Source),
			OccurredAt:  event.OccurredAt,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}

// CreateSettlementRequest opens a settlement batch for a courier period.
type CreateSettlementRequest struct {
	CourierID   string    `json:"courierId"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

// CreateSettlementResponse returns the identifier of the created batch.
type CreateSettlementResponse struct {
	SettlementID string `json:"settlementId"`
}

// CreateSettlement handles POST /api/v1/settlements requests.
func (s *Server) CreateSettlement(ctx echo.Context) error {
	var req CreateSettlementRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	settlementID := kernel.NewUUID()

	cmd, err := commands.NewCreateSettlementCommand(
		settlementID, courierID, req.PeriodStart, req.PeriodEnd,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.createSettlementHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, err)
		case errors.Is(err, commands.ErrNoEligibleShipments):
			return conflict(ctx, err)
		default:
			return serverError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusCreated, CreateSettlementResponse{
		SettlementID: settlementID.String(),
	})
}

// MarkSettlementPaidRequest records a settlement payout.
type MarkSettlementPaidRequest struct {
	PaymentReference string    `json:"paymentReference"`
	PaymentMethod    string    `json:"paymentMethod,omitempty"`
	PaidAt           time.Time `json:"paidAt,omitempty"`
}

// MarkSettlementPaid handles POST /api/v1/settlements/:id/pay requests.
func (s *Server) MarkSettlementPaid(ctx echo.Context) error {
	settlementID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid settlement id")
	}

	var req MarkSettlementPaidRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkSettlementPaidCommand(
		settlementID, req.PaymentReference, req.PaymentMethod, req.PaidAt,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.markSettlementPaidHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return notFound(ctx, err)
		case errors.Is(err, settlement.ErrSettlementAlreadyPaid),
			errors.Is(err, settlement.ErrSettlementIsVoided):
			return conflict(ctx, err)
		default:
			return serverError(ctx, err)
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CourierPaymentStatsResponse summarizes a courier's shipment payments.
type CourierPaymentStatsResponse struct {
	CourierID       string  `json:"courierId"`
	TotalShipments  int     `json:"totalShipments"`
	PendingPayment  float64 `json:"pendingPayment"`
	ApprovedPayment float64 `json:"approvedPayment"`
	PaidAmount      float64 `json:"paidAmount"`
	TotalDue        float64 `json:"totalDue"`
}

// GetCourierPaymentStats handles GET /api/v1/couriers/:id/stats requests.
func (s *Server) GetCourierPaymentStats(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid courier id")
	}

	query, err := queries.NewGetCourierPaymentStatsQuery(courierID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	stats, err := s.getCourierPaymentStatsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return serverError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierPaymentStatsResponse{
		CourierID:       stats.CourierID.String(),
		TotalShipments:  stats.TotalShipments,
		PendingPayment:  stats.PendingPayment,
		ApprovedPayment: stats.ApprovedPayment,
		PaidAmount:      stats.PaidAmount,
		TotalDue:        stats.TotalDue,
	})
}

func itemsFromRequest(reqItems []ItemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(reqItems))

	for _, reqItem := range reqItems {
		productID, err := kernel.UUIDFromString(reqItem.ProductID)
		if err != nil {
			return nil, errors.New("invalid product id: " + reqItem.ProductID)
		}

		hubID, err := uuidPtrFromString(reqItem.HubID)
		if err != nil {
			return nil, errors.New("invalid hub id")
		}

		vendorID, err := uuidPtrFromString(reqItem.VendorID)
		if err != nil {
			return nil, errors.New("invalid vendor id")
		}

		unitPrice, err := kernel.NewMoney(reqItem.UnitPrice)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(productID, hubID, vendorID, reqItem.Quantity, unitPrice, reqItem.WeightKg)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

func uuidPtrFromString(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func uuidPtrToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}

	s := id.String()

	return &s
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusNotFound, Error{
		Code:    http.StatusNotFound,
		Message: err.Error(),
	})
}

func conflict(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: err.Error(),
	})
}

func serverError(ctx echo.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: "upstream timeout: " + err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	})
}
