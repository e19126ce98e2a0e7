package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
	"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
)

// RecordTrackingEventCommand reports a shipment status update from an
// operator, a courier webhook, or the sync job. Handling it appends the
// event to the sub-order's log and moves the denormalized status in the
// same write.
//
// Example:
//
//	cmd, err := NewRecordTrackingEventCommand(subOrderID,
//	    order.DeliveryInTransit, "Departed sorting facility", "Lagos",
//	    order.SourceCourierWebhook, reportedAt)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	subOrderID  kernel.UUID
	status      order.DeliveryStatus
	description string
	location    string
	source      order.EventSource
	occurredAt  time.Time

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command to record one tracking
// event. Description and location are optional; a zero occurredAt defaults
// to the current time.
func NewRecordTrackingEventCommand(
	subOrderID kernel.UUID,
	status order.DeliveryStatus,
	description, location string,
	source order.EventSource,
	occurredAt time.Time,
) (RecordTrackingEventCommand, error) {
	cmd := RecordTrackingEventCommand{
		description: description,
		location:    location,
		occurredAt:  occurredAt,

		guard: guard.NewConstructorGuard(),
	}

	if cmd.occurredAt.IsZero() {
		cmd.occurredAt = time.Now()
	}

	if err := errors.Join(
		cmd.setSubOrderID(subOrderID),
		cmd.setStatus(status),
		cmd.setSource(source),
	); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordTrackingEventCommandIsNotConstructed if validation fails.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// SubOrderID returns the shipment the event belongs to.
func (c RecordTrackingEventCommand) SubOrderID() kernel.UUID {
	return c.subOrderID
}

// Status returns the reported delivery status.
func (c RecordTrackingEventCommand) Status() order.DeliveryStatus {
	return c.status
}

// Description returns the human-readable event text, may be empty.
func (c RecordTrackingEventCommand) Description() string {
	return c.description
}

// Location returns where the event happened, may be empty.
func (c RecordTrackingEventCommand) Location() string {
	return c.location
}

// Source returns who reported the event.
func (c RecordTrackingEventCommand) Source() order.EventSource {
	return c.source
}

// OccurredAt returns when the event happened.
func (c RecordTrackingEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

func (c *RecordTrackingEventCommand) setSubOrderID(subOrderID kernel.UUID) error {
	if err := subOrderID.Validate(); err != nil {
		return err
	}

	c.subOrderID = subOrderID
	return nil
}

func (c *RecordTrackingEventCommand) setStatus(status order.DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *RecordTrackingEventCommand) setSource(source order.EventSource) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}
