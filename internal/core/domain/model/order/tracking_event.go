package order

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent instance
// was not created through the NewTrackingEvent factory method.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent constructor")

// EventSource identifies who reported a tracking event.
type EventSource string

const (
	// SourceOperator marks events entered manually by support staff.
	SourceOperator EventSource = "operator"

	// SourceCourierWebhook marks events pushed by a courier integration.
	SourceCourierWebhook EventSource = "courier_webhook"

	// SourceSyncJob marks events pulled by the scheduled tracking sync.
	SourceSyncJob EventSource = "sync_job"

	// SourceAutoAssignment marks the event written by courier assignment.
	SourceAutoAssignment EventSource = "auto_assignment"

	// SourceSystem marks events the engine writes itself, such as the
	// initial pending event after an order split.
	SourceSystem EventSource = "system"
)

// Validate checks that the EventSource is one of the defined sources.
func (s EventSource) Validate() error {
	switch s {
	case SourceOperator, SourceCourierWebhook, SourceSyncJob, SourceAutoAssignment, SourceSystem:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"source is invalid", fmt.Errorf("%q is not a valid event source", string(s)))
	}
}

// TrackingEvent is one entry of a sub-order's append-only status log.
// Events are never edited or deleted; the sub-order's denormalized status is
// always the status of its most recent event by occurredAt.
type TrackingEvent struct {
	id          kernel.UUID
	subOrderID  kernel.UUID
	status      DeliveryStatus
	description string
	location    string
	source      EventSource
	occurredAt  time.Time

	isConstructed bool
}

// NewTrackingEvent creates a validated tracking event. Description and
// location are optional free text.
func NewTrackingEvent(
	id, subOrderID kernel.UUID,
	status DeliveryStatus,
	description, location string,
	source EventSource,
	occurredAt time.Time,
) (*TrackingEvent, error) {
	event := &TrackingEvent{
		description:   description,
		location:      location,
		isConstructed: true,
	}

	if err := errors.Join(
		event.setID(id),
		event.setSubOrderID(subOrderID),
		event.setStatus(status),
		event.setSource(source),
		event.setOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate ensures the TrackingEvent was constructed through NewTrackingEvent.
func (e *TrackingEvent) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrTrackingEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// SubOrderID returns the sub-order the event belongs to.
func (e *TrackingEvent) SubOrderID() kernel.UUID {
	return e.subOrderID
}

// Status returns the delivery status the event reports.
func (e *TrackingEvent) Status() DeliveryStatus {
	return e.status
}

// Description returns the human-readable event text.
func (e *TrackingEvent) Description() string {
	return e.description
}

// Location returns where the event happened, free text from the source.
func (e *TrackingEvent) Location() string {
	return e.location
}

// Source returns who reported the event.
func (e *TrackingEvent) Source() EventSource {
	return e.source
}

// OccurredAt returns the event time as reported by the source.
func (e *TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

func (e *TrackingEvent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *TrackingEvent) setSubOrderID(subOrderID kernel.UUID) error {
	if err := subOrderID.Validate(); err != nil {
		return err
	}
	e.subOrderID = subOrderID
	return nil
}

func (e *TrackingEvent) setStatus(status DeliveryStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *TrackingEvent) setSource(source EventSource) error {
	if err := source.Validate(); err != nil {
		return err
	}
	e.source = source
	return nil
}

func (e *TrackingEvent) setOccurredAt(occurredAt time.Time) error {
	if occurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	e.occurredAt = occurredAt
	return nil
}
