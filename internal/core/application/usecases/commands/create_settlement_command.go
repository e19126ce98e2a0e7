package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateSettlementCommandIsNotConstructed = errors.New(
		"CreateSettlementCommand must be created via NewCreateSettlementCommand constructor",
	)
	ErrSettlementPeriodIsInvalid = errors.New("settlement period start must not be after end")
)

// CreateSettlementCommand requests a settlement statement for a courier: the
// courier's eligible shipments inside the period are aggregated into one
// pending settlement with a line per shipment.
//
// Example:
//
//	cmd, err := NewCreateSettlementCommand(kernel.NewUUID(), courierID,
//	    monthStart, monthEnd)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoEligibleShipments) {
//	    log.Println("nothing to settle in this window")
//	}
type CreateSettlementCommand struct { //nolint:recvcheck //using for validation
	settlementID kernel.UUID
	courierID    kernel.UUID
	periodStart  time.Time
	periodEnd    time.Time

	guard guard.ConstructorGuard
}

// NewCreateSettlementCommand creates a command to settle a courier's
// shipments for the given period.
func NewCreateSettlementCommand(
	settlementID, courierID kernel.UUID,
	periodStart, periodEnd time.Time,
) (CreateSettlementCommand, error) {
	cmd := CreateSettlementCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSettlementID(settlementID),
		cmd.setCourierID(courierID),
		cmd.setPeriod(periodStart, periodEnd),
	); err != nil {
		return CreateSettlementCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateSettlementCommandIsNotConstructed if validation fails.
func (c CreateSettlementCommand) Validate() error {
	return c.guard.Validate(ErrCreateSettlementCommandIsNotConstructed)
}

// SettlementID returns the identifier the settlement will be created under.
func (c CreateSettlementCommand) SettlementID() kernel.UUID {
	return c.settlementID
}

// CourierID returns the courier being settled.
func (c CreateSettlementCommand) CourierID() kernel.UUID {
	return c.courierID
}

// PeriodStart returns the start of the settlement window.
func (c CreateSettlementCommand) PeriodStart() time.Time {
	return c.periodStart
}

// PeriodEnd returns the end of the settlement window.
func (c CreateSettlementCommand) PeriodEnd() time.Time {
	return c.periodEnd
}

func (c *CreateSettlementCommand) setSettlementID(settlementID kernel.UUID) error {
	if err := settlementID.Validate(); err != nil {
		return err
	}

	c.settlementID = settlementID
	return nil
}

func (c *CreateSettlementCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreateSettlementCommand) setPeriod(start, end time.Time) error {
	if start.After(end) {
		return ErrSettlementPeriodIsInvalid
	}

	c.periodStart = start
	c.periodEnd = end
	return nil
}
