package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/settlement"
)

// ErrNoEligibleShipments is returned when a settlement window yields zero
// eligible sub-orders. Empty settlements are rejected rather than created
// at zero amount.
var ErrNoEligibleShipments = errors.New("no eligible shipments in settlement period")

// CreateSettlementCommandHandler aggregates a courier's eligible shipments
// into a pending settlement. A shipment is eligible when the courier is
// still owed for it (settlement status pending or approved), it is delivered
// or in transit, and it is not already referenced by an open settlement.
type CreateSettlementCommandHandler struct {
	uowFactory SettlementUoWFactory
}

// NewCreateSettlementCommandHandler creates a handler for settlement
// creation.
func NewCreateSettlementCommandHandler(uowFactory SettlementUoWFactory) CreateSettlementCommandHandler {
	return CreateSettlementCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement creation command. Fails with
// errs.ErrObjectNotFound when the courier does not exist and
// ErrNoEligibleShipments when the window is empty.
func (h CreateSettlementCommandHandler) Handle(ctx context.Context, cmd CreateSettlementCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	orderRepo := uow.OrderRepository()
	settlementRepo := uow.SettlementRepository()

	if _, err := courierRepo.Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	eligible, err := orderRepo.GetSubOrdersEligibleForSettlement(
		ctx, cmd.CourierID(), cmd.PeriodStart(), cmd.PeriodEnd())
	if err != nil {
		return err
	}
	if len(eligible) == 0 {
		return ErrNoEligibleShipments
	}

	items := make([]settlement.Item, 0, len(eligible))
	for _, subOrder := range eligible {
		item, err := settlement.NewItem(subOrder.ID(), subOrder.ShippingCost())
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	stmt, err := settlement.NewSettlement(
		cmd.SettlementID(), cmd.CourierID(),
		cmd.PeriodStart(), cmd.PeriodEnd(), items)
	if err != nil {
		return err
	}

	if err = settlementRepo.Add(ctx, stmt); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
