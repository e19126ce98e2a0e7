package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkSettlementPaidCommandIsNotConstructed = errors.New(
		"MarkSettlementPaidCommand must be created via NewMarkSettlementPaidCommand constructor",
	)
	ErrPaymentReferenceIsRequired = errors.New("payment reference is required")
)

// MarkSettlementPaidCommand records the payout of a settlement: the
// settlement is stamped paid with the payment metadata, and every linked
// sub-order is stamped with its settlement date, reference, and paid amount.
//
// Example:
//
//	cmd, err := NewMarkSettlementPaidCommand(settlementID,
//	    "PAY-2026-03-001", "bank_transfer", time.Now())
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type MarkSettlementPaidCommand struct { //nolint:recvcheck //using for validation
	settlementID     kernel.UUID
	paymentReference string
	paymentMethod    string
	paidAt           time.Time

	guard guard.ConstructorGuard
}

// NewMarkSettlementPaidCommand creates a command to record a settlement
// payout. Payment method is optional; a zero paidAt defaults to the current
// time.
func NewMarkSettlementPaidCommand(
	settlementID kernel.UUID,
	paymentReference, paymentMethod string,
	paidAt time.Time,
) (MarkSettlementPaidCommand, error) {
	cmd := MarkSettlementPaidCommand{
		paymentMethod: paymentMethod,
		paidAt:        paidAt,

		guard: guard.NewConstructorGuard(),
	}

	if cmd.paidAt.IsZero() {
		cmd.paidAt = time.Now()
	}

	if err := errors.Join(
		cmd.setSettlementID(settlementID),
		cmd.setPaymentReference(paymentReference),
	); err != nil {
		return MarkSettlementPaidCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkSettlementPaidCommandIsNotConstructed if validation fails.
func (c MarkSettlementPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkSettlementPaidCommandIsNotConstructed)
}

// SettlementID returns the settlement being paid.
func (c MarkSettlementPaidCommand) SettlementID() kernel.UUID {
	return c.settlementID
}

// PaymentReference returns the payout reference to stamp.
func (c MarkSettlementPaidCommand) PaymentReference() string {
	return c.paymentReference
}

// PaymentMethod returns how the payout was made, may be empty.
func (c MarkSettlementPaidCommand) PaymentMethod() string {
	return c.paymentMethod
}

// PaidAt returns when the payout happened.
func (c MarkSettlementPaidCommand) PaidAt() time.Time {
	return c.paidAt
}

func (c *MarkSettlementPaidCommand) setSettlementID(settlementID kernel.UUID) error {
	if err := settlementID.Validate(); err != nil {
		return err
	}

	c.settlementID = settlementID
	return nil
}

func (c *MarkSettlementPaidCommand) setPaymentReference(reference string) error {
	if reference == "" {
		return ErrPaymentReferenceIsRequired
	}

	c.paymentReference = reference
	return nil
}
