package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetCourierPaymentStatsQueryIsNotConstructed = errors.New(
		"GetCourierPaymentStatsQuery must be created via NewGetCourierPaymentStatsQuery constructor",
	)
	ErrStatsCourierIDIsRequired = errors.New("courier id is required")
)

// GetCourierPaymentStatsQuery summarizes what a courier has earned and is
// still owed across all of its shipments.
//
// Example:
//
//	query, err := NewGetCourierPaymentStatsQuery(courierID)
//	if err != nil {
//	    return err
//	}
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get payment stats: %w", err)
//	}
//
//	fmt.Printf("Courier owed %.2f across %d shipments\n",
//	    stats.TotalDue, stats.TotalShipments)
//
//nolint:recvcheck //using for validation
type GetCourierPaymentStatsQuery struct {
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierPaymentStatsQuery creates a payment stats query for the
// given courier.
func NewGetCourierPaymentStatsQuery(courierID kernel.UUID) (GetCourierPaymentStatsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierPaymentStatsQuery{}, ErrStatsCourierIDIsRequired
	}

	return GetCourierPaymentStatsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CourierID returns the courier the stats are computed for.
func (q GetCourierPaymentStatsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Validate ensures the query was created through the constructor.
func (q GetCourierPaymentStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierPaymentStatsQueryIsNotConstructed)
}

// GetCourierPaymentStatsQueryResponse aggregates the courier's earnings.
// PendingPayment and ApprovedPayment sum shipping costs still owed;
// PaidAmount sums what was actually paid out, which reflects the rates in
// force when each settlement was closed.
type GetCourierPaymentStatsQueryResponse struct {
	CourierID       kernel.UUID
	TotalShipments  int
	PendingPayment  float64
	ApprovedPayment float64
	PaidAmount      float64
	TotalDue        float64
}
