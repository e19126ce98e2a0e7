package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand requests courier assignment for one sub-order. The
// sub-order must already have a hub; the hub's courier links decide who
// carries the shipment.
//
// Example:
//
//	cmd, err := NewAssignCourierCommand(subOrderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewAssignCourierCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrNoCourierAvailable) {
//	    log.Printf("hub has no couriers configured")
//	}
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	subOrderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to assign a courier to the given
// sub-order.
func NewAssignCourierCommand(subOrderID kernel.UUID) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSubOrderID(subOrderID); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// SubOrderID returns the sub-order to assign.
func (c AssignCourierCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

func (c *AssignCourierCommand) setSubOrderID(subOrderID kernel.UUID) error {
	if err := subOrderID.Validate(); err != nil {
		return err
	}

	c.subOrderID = subOrderID
	return nil
}
