package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// RecordTrackingEventCommandHandler appends tracking events to sub-orders
// and keeps the denormalized status in step.
//
// Progression modes: accept-any records whatever the source reports, the
// behavior courier webhooks rely on; strict rejects status regressions along
// the delivery lifecycle. Either way the resulting status is derived from
// the most recent event by event time, so a late-arriving event carrying an
// old timestamp cannot clobber a newer status.
//
// After a successful commit the handler notifies the dispatcher of the
// status change. Dispatch is best-effort: failures are logged and never
// returned to the caller.
type RecordTrackingEventCommandHandler struct {
	uowFactory TrackingUoWFactory
	dispatcher ports.NotificationDispatcher
	logger     *slog.Logger
	strict     bool
}

// NewRecordTrackingEventCommandHandler creates a handler for tracking
// updates. strict selects the progression mode.
func NewRecordTrackingEventCommandHandler(
	uowFactory TrackingUoWFactory,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
	strict bool,
) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger.With("component", "tracking"),
		strict:     strict,
	}
}

// Handle processes one tracking update. Fails with errs.ErrObjectNotFound
// when the sub-order does not exist, or errs.ErrValueIsOutOfRange in strict
// mode when the reported status regresses.
func (h RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) error {
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

	orderRepo := uow.OrderRepository()

	subOrder, err := orderRepo.GetSubOrder(ctx, cmd.SubOrderID())
	if err != nil {
		return err
	}

	oldStatus := subOrder.Status()

	if _, err = subOrder.RecordEvent(
		cmd.Status(), cmd.Description(), cmd.Location(),
		cmd.Source(), cmd.OccurredAt(), h.strict,
	); err != nil {
		return err
	}

	if err = orderRepo.UpdateSubOrder(ctx, subOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if newStatus := subOrder.Status(); newStatus != oldStatus {
		if err = h.dispatcher.SubOrderStatusChanged(
			ctx, subOrder.OrderID(), subOrder.ID(), oldStatus, newStatus,
		); err != nil {
			h.logger.Error("notification dispatch failed",
				"subOrderID", subOrder.ID().String(),
				"error", err)
		}
	}

	return nil
}
