package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/services"
)

// ErrMissingHub is returned when assignment is requested for a sub-order
// that has no hub reference. Hubless sub-orders cannot be assigned because
// couriers are configured per hub.
var ErrMissingHub = errors.New("sub-order has no hub")

// AssignCourierCommandHandler orchestrates courier assignment for a single
// sub-order: loads it, reads the hub's courier links, selects the winner
// under the primary-then-priority policy, and records the assignment with
// its tracking event.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	cmd, _ := NewAssignCourierCommand(subOrderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("sub-order does not exist")
//	case errors.Is(err, ErrMissingHub):
//	    log.Println("sub-order has no hub")
//	case errors.Is(err, services.ErrNoCourierAvailable):
//	    log.Println("hub has no couriers configured")
//	}
type AssignCourierCommandHandler struct {
	uowFactory AssignCourierUoWFactory
	selector   services.CourierSelector
}

// NewAssignCourierCommandHandler creates a handler for courier assignment.
func NewAssignCourierCommandHandler(uowFactory AssignCourierUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewCourierSelector(),
	}
}

// Handle processes the assignment command. Re-running on an already-assigned
// sub-order overwrites the courier; callers guard against re-assignment of
// shipments that are past assigned, which the aggregate rejects.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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
	hubRepo := uow.HubRepository()
	courierRepo := uow.CourierRepository()

	subOrder, err := orderRepo.GetSubOrder(ctx, cmd.SubOrderID())
	if err != nil {
		return err
	}

	hubID := subOrder.HubID()
	if hubID == nil {
		return ErrMissingHub
	}

	links, err := hubRepo.GetHubCouriers(ctx, *hubID)
	if err != nil {
		return err
	}

	best, err := h.selector.Select(links)
	if err != nil {
		return err
	}

	assignee, err := courierRepo.Get(ctx, best.CourierID())
	if err != nil {
		return err
	}

	if _, err = subOrder.AssignCourier(assignee.ID(), assignee.Name(), time.Now()); err != nil {
		return err
	}

	if err = orderRepo.UpdateSubOrder(ctx, subOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
