package commands

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/rate"
	"fulfillment/internal/core/domain/model/zone"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// SplitOrderCommandHandler orchestrates order ingest: zone resolution, the
// main order insert, partitioning into sub-orders, and the sub-order and
// tracking event inserts.
//
// The handler runs in one of two write modes. Transactional mode wraps the
// whole sequence in a single transaction. Compatibility mode writes each row
// independently, matching installations whose data predates transactional
// ingest; a mid-sequence failure then returns *errs.SubOrderPersistError
// naming the sub-orders that were already persisted so the caller can
// remediate.
type SplitOrderCommandHandler struct {
	uowFactory    SplitOrderUoWFactory
	splitter      services.OrderSplitter
	calculator    services.ShippingCalculator
	transactional bool
}

// NewSplitOrderCommandHandler creates a handler for order ingest.
// transactional selects the write mode.
func NewSplitOrderCommandHandler(uowFactory SplitOrderUoWFactory, transactional bool) SplitOrderCommandHandler {
	return SplitOrderCommandHandler{
		uowFactory:    uowFactory,
		splitter:      services.NewOrderSplitter(),
		calculator:    services.NewShippingCalculator(),
		transactional: transactional,
	}
}

// Handle processes the order ingest command and returns the created
// sub-orders. Fails with errs.ErrObjectNotFound when no zone covers the
// delivery state.
func (h SplitOrderCommandHandler) Handle(ctx context.Context, cmd SplitOrderCommand) ([]*order.SubOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if h.transactional {
		if err := uow.Begin(ctx); err != nil {
			return nil, err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()
	}

	zoneRepo := uow.ZoneRepository()
	rateRepo := uow.RateRepository()
	orderRepo := uow.OrderRepository()

	z, err := zoneRepo.GetByState(ctx, cmd.DeliveryState())
	if err != nil {
		return nil, err
	}

	subtotal := cmd.Subtotal()
	total := subtotal.Add(cmd.ShippingFeePaid())

	mainOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerName(), cmd.CustomerEmail(), cmd.CustomerPhone(),
		cmd.DeliveryStreet(), cmd.DeliveryCity(), cmd.DeliveryState(),
		z.ID(),
		subtotal, cmd.ShippingFeePaid(), total,
		cmd.PaymentStatus(),
	)
	if err != nil {
		return nil, err
	}

	shippingCosts, err := h.quoteCosts(ctx, z, cmd.Items(), subtotal, rateRepo)
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, mainOrder); err != nil {
		return nil, err
	}

	subOrders, err := h.splitter.Split(mainOrder, cmd.Items(), shippingCosts, time.Now())
	if err != nil {
		return nil, err
	}

	persisted := make([]*order.SubOrder, 0, len(subOrders))
	for _, subOrder := range subOrders {
		if err = orderRepo.AddSubOrder(ctx, subOrder); err != nil {
			if h.transactional {
				return nil, err
			}
			return nil, errs.NewSubOrderPersistError(
				mainOrder.ID().Bytes(), subOrderUUIDs(persisted), err)
		}
		persisted = append(persisted, subOrder)
	}

	if h.transactional {
		if err = uow.Commit(ctx); err != nil {
			return nil, err
		}
	}

	return subOrders, nil
}

// quoteCosts prices the order's hub groups so each sub-order carries the
// courier cost of its leg. A hub group without an active rate is carried at
// zero cost rather than blocking ingest; the order was already charged, so a
// pricing gap is an operator concern, not an ingest failure. Covered groups
// keep their real cost.
func (h SplitOrderCommandHandler) quoteCosts(
	ctx context.Context,
	z *zone.Zone,
	items []order.Item,
	orderValue kernel.Money,
	rateRepo ports.RateRepository,
) (map[string]kernel.Money, error) {
	lookup := func(hubID *kernel.UUID) (*rate.ShippingRate, error) {
		r, err := rateRepo.FindActive(ctx, z.ID(), hubID)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return zeroRate(z.ID(), hubID)
		}
		return r, err
	}

	quote, err := h.calculator.Quote(z, items, orderValue, lookup)
	if err != nil {
		return nil, err
	}

	costs := make(map[string]kernel.Money, len(quote.Breakdown))
	for _, line := range quote.Breakdown {
		key := services.DefaultHubKey
		if line.HubID != nil {
			key = line.HubID.String()
		}
		costs[key] = line.ShippingCost
	}
	return costs, nil
}

// zeroRate stands in for a missing rate row so an uncovered hub group
// prices at zero without aborting the quote.
func zeroRate(zoneID kernel.UUID, hubID *kernel.UUID) (*rate.ShippingRate, error) {
	return rate.NewShippingRate(
		kernel.NewUUID(), zoneID, hubID, nil,
		kernel.ZeroMoney(), kernel.ZeroMoney(),
		nil, nil, nil,
		true, 0,
	)
}

func subOrderUUIDs(subOrders []*order.SubOrder) []uuid.UUID {
	ids := make([]uuid.UUID, len(subOrders))
	for i, so := range subOrders {
		ids[i] = so.ID().Bytes()
	}
	return ids
}
