package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetCourierPaymentStatsQueryHandler aggregates per-courier payment
// figures straight from the sub_orders table. Reading the rows directly
// keeps the report a single round trip regardless of shipment count.
//
// Example:
//
//	handler := NewGetCourierPaymentStatsQueryHandler(db)
//	query, _ := NewGetCourierPaymentStatsQuery(courierID)
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get payment stats: %v", err)
//	    return err
//	}
type GetCourierPaymentStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetCourierPaymentStatsQueryHandler creates a handler for courier
// payment stats queries. Requires a GORM database connection.
func NewGetCourierPaymentStatsQueryHandler(db *gorm.DB) GetCourierPaymentStatsQueryHandler {
	return GetCourierPaymentStatsQueryHandler{db: db}
}

// Handle computes the courier's shipment and payment totals. A courier
// with no shipments yields zeroed stats rather than an error.
func (h GetCourierPaymentStatsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierPaymentStatsQuery,
) (*GetCourierPaymentStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN settlement_status = ? THEN shipping_cost END), 0),
			COALESCE(SUM(CASE WHEN settlement_status = ? THEN shipping_cost END), 0),
			COALESCE(SUM(CASE WHEN settlement_status = ? THEN courier_paid_amount END), 0)
		FROM sub_orders
		WHERE courier_id = ?
	`,
		order.SettlementPending.String(),
		order.SettlementApproved.String(),
		order.SettlementPaid.String(),
		query.CourierID().Bytes(),
	).Row()

	resp := GetCourierPaymentStatsQueryResponse{CourierID: query.CourierID()}
	err := row.Scan(
		&resp.TotalShipments,
		&resp.PendingPayment,
		&resp.ApprovedPayment,
		&resp.PaidAmount,
	)
	if err != nil {
		return nil, err
	}

	resp.TotalDue = resp.PendingPayment + resp.ApprovedPayment
	return &resp, nil
}
