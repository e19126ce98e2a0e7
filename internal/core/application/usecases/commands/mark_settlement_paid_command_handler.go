package commands

import (
	"context"

	"github.com/google/uuid"

	"fulfillment/internal/core/domain/model/settlement"
	"fulfillment/internal/pkg/errs"
)

// MarkSettlementPaidCommandHandler records settlement payouts. The write has
// two phases: the settlement row first, then a stamp on every linked
// sub-order.
//
// In transactional mode both phases commit or roll back together. In
// compatibility mode each write lands independently; a failure after the
// settlement row is in returns *errs.SettlementPartiallyPaidError naming the
// sub-orders that were already stamped so the payout can be reconciled.
type MarkSettlementPaidCommandHandler struct {
	uowFactory    SettlementUoWFactory
	transactional bool
}

// NewMarkSettlementPaidCommandHandler creates a handler for settlement
// payouts. transactional selects the write mode.
func NewMarkSettlementPaidCommandHandler(uowFactory SettlementUoWFactory, transactional bool) MarkSettlementPaidCommandHandler {
	return MarkSettlementPaidCommandHandler{
		uowFactory:    uowFactory,
		transactional: transactional,
	}
}

// Handle processes the payout command. Fails with errs.ErrObjectNotFound
// when the settlement does not exist and settlement.ErrSettlementAlreadyPaid
// when it was already paid out.
func (h MarkSettlementPaidCommandHandler) Handle(ctx context.Context, cmd MarkSettlementPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if h.transactional {
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = uow.Rollback(ctx)
		}()
	}

	orderRepo := uow.OrderRepository()
	settlementRepo := uow.SettlementRepository()

	stmt, err := settlementRepo.Get(ctx, cmd.SettlementID())
	if err != nil {
		return err
	}

	if err = stmt.MarkPaid(settlement.PaymentInfo{
		Reference: cmd.PaymentReference(),
		Method:    cmd.PaymentMethod(),
		PaidAt:    cmd.PaidAt(),
	}); err != nil {
		return err
	}

	if err = settlementRepo.Update(ctx, stmt); err != nil {
		return err
	}

	var stamped []uuid.UUID
	for _, subOrderID := range stmt.SubOrderIDs() {
		subOrder, err := orderRepo.GetSubOrder(ctx, subOrderID)
		if err == nil {
			if err = subOrder.MarkSettled(cmd.PaymentReference(), cmd.PaidAt()); err == nil {
				err = orderRepo.UpdateSubOrder(ctx, subOrder)
			}
		}
		if err != nil {
			if h.transactional {
				return err
			}
			return errs.NewSettlementPartiallyPaidError(stmt.ID().Bytes(), stamped, err)
		}
		stamped = append(stamped, subOrderID.Bytes())
	}

	if h.transactional {
		if err = uow.Commit(ctx); err != nil {
			return err
		}
	}

	return nil
}
