package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/rate"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

const defaultHubName = "Default Hub"

// CalculateShippingQueryHandler produces shipping quotes from configured
// zones and rates. It resolves the zone for the delivery state, prices each
// hub group through the shipping calculator and decorates the breakdown
// with hub names.
//
// Example:
//
//	handler := NewCalculateShippingQueryHandler(zoneRepo, rateRepo, hubRepo)
//	query, _ := NewCalculateShippingQuery("Delta", "Warri", items, orderValue)
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to calculate shipping: %v", err)
//	    return err
//	}
type CalculateShippingQueryHandler struct {
	zoneRepo   ports.ZoneRepository
	rateRepo   ports.RateRepository
	hubRepo    ports.HubRepository
	calculator services.ShippingCalculator
}

// NewCalculateShippingQueryHandler creates a handler for shipping quote
// queries.
func NewCalculateShippingQueryHandler(
	zoneRepo ports.ZoneRepository,
	rateRepo ports.RateRepository,
	hubRepo ports.HubRepository,
) CalculateShippingQueryHandler {
	return CalculateShippingQueryHandler{
		zoneRepo:   zoneRepo,
		rateRepo:   rateRepo,
		hubRepo:    hubRepo,
		calculator: services.NewShippingCalculator(),
	}
}

// Handle resolves the zone, prices the items and returns the quote.
// An unknown delivery state surfaces as errs.ObjectNotFoundError; a zone
// without a usable rate surfaces as services.ErrRateNotFound.
func (h CalculateShippingQueryHandler) Handle(
	ctx context.Context,
	query CalculateShippingQuery,
) (*CalculateShippingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	z, err := h.zoneRepo.GetByState(ctx, query.State())
	if err != nil {
		return nil, err
	}

	lookup := func(hubID *kernel.UUID) (*rate.ShippingRate, error) {
		r, lookupErr := h.rateRepo.FindActive(ctx, z.ID(), hubID)
		if lookupErr != nil {
			if errors.Is(lookupErr, errs.ErrObjectNotFound) {
				return nil, services.ErrRateNotFound
			}
			return nil, lookupErr
		}
		return r, nil
	}

	quote, err := h.calculator.Quote(z, query.Items(), query.OrderValue(), lookup)
	if err != nil {
		return nil, err
	}

	breakdown := make([]ShippingQuoteLine, 0, len(quote.Breakdown))
	for _, line := range quote.Breakdown {
		name := defaultHubName
		if line.HubID != nil {
			h2, hubErr := h.hubRepo.Get(ctx, *line.HubID)
			if hubErr != nil {
				return nil, hubErr
			}
			name = h2.Name()
		}
		breakdown = append(breakdown, ShippingQuoteLine{
			HubID:         line.HubID,
			HubName:       name,
			ShippingCost:  line.ShippingCost,
			ItemCount:     line.ItemCount,
			TotalWeightKg: line.TotalWeightKg,
		})
	}

	return &CalculateShippingQueryResponse{
		TotalShippingFee:      quote.Total,
		ZoneID:                quote.ZoneID,
		ZoneName:              quote.ZoneName,
		EstimatedDeliveryDays: quote.EstimatedDeliveryDays,
		Breakdown:             breakdown,
	}, nil
}
