// Package settlement contains the courier settlement aggregate: a batch of
// delivered sub-orders owed to one courier over a period, with one line item
// per sub-order. A sub-order appears in at most one non-voided settlement;
// payment flows through the explicit MarkPaid action, which the application
// layer then propagates to each linked sub-order.
package settlement

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrSettlementIsNotConstructed is returned when a Settlement instance
	// was not created through the NewSettlement factory method.
	ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewSettlement constructor")

	// ErrSettlementHasNoItems is returned when a settlement would be created
	// with no line items.
	ErrSettlementHasNoItems = errors.New("settlement must contain at least one item")

	// ErrSettlementAlreadyPaid is returned when MarkPaid is invoked on an
	// already-paid settlement.
	ErrSettlementAlreadyPaid = errors.New("settlement is already paid")

	// ErrSettlementIsVoided is returned when a voided settlement is mutated.
	ErrSettlementIsVoided = errors.New("settlement is voided")
)

// Item is one line of a settlement: a sub-order and the amount owed for it,
// which is that sub-order's shipping cost at aggregation time.
type Item struct {
	subOrderID kernel.UUID
	amount     kernel.Money
}

// NewItem creates a validated settlement line.
func NewItem(subOrderID kernel.UUID, amount kernel.Money) (Item, error) {
	if err := errors.Join(subOrderID.Validate(), amount.Validate()); err != nil {
		return Item{}, err
	}
	return Item{subOrderID: subOrderID, amount: amount}, nil
}

// SubOrderID returns the sub-order the line pays for.
func (i Item) SubOrderID() kernel.UUID {
	return i.subOrderID
}

// Amount returns the amount owed for the sub-order.
func (i Item) Amount() kernel.Money {
	return i.amount
}

// PaymentInfo carries the metadata stamped on a settlement when it is paid.
type PaymentInfo struct {
	Reference string
	Method    string
	PaidAt    time.Time
}

// Validate checks that the payment info carries a reference and a date.
func (p PaymentInfo) Validate() error {
	if p.Reference == "" {
		return errs.NewValueIsRequiredError("paymentReference")
	}
	if p.PaidAt.IsZero() {
		return errs.NewValueIsRequiredError("paidAt")
	}
	return nil
}

// Settlement is the aggregate for one courier payout batch.
//
// Invariants:
//   - Must reference a courier and a non-empty period
//   - Owns at least one item; total equals the sum of item amounts
//   - Transitions to paid only through MarkPaid, exactly once
type Settlement struct {
	id          kernel.UUID
	courierID   kernel.UUID
	periodStart time.Time
	periodEnd   time.Time
	total       kernel.Money
	status      Status

	paymentReference string
	paymentMethod    string
	paidAt           *time.Time

	items []Item

	isConstructed bool
}

// NewSettlement creates a pending settlement over the given period. The
// total is derived from the items.
func NewSettlement(id, courierID kernel.UUID, periodStart, periodEnd time.Time, items []Item) (*Settlement, error) {
	s := &Settlement{
		status:        StatusPending,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setCourierID(courierID),
		s.setPeriod(periodStart, periodEnd),
		s.setItems(items),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSettlement rehydrates a Settlement from persistence.
func RestoreSettlement(
	id, courierID kernel.UUID,
	periodStart, periodEnd time.Time,
	items []Item,
	status Status,
	paymentReference, paymentMethod string,
	paidAt *time.Time,
) (*Settlement, error) {
	s, err := NewSettlement(id, courierID, periodStart, periodEnd, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	s.status = status
	s.paymentReference = paymentReference
	s.paymentMethod = paymentMethod
	s.paidAt = paidAt
	return s, nil
}

// Validate ensures the Settlement was constructed through a factory method.
func (s *Settlement) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettlementIsNotConstructed
	}
	return nil
}

// ID returns the settlement's unique identifier.
func (s *Settlement) ID() kernel.UUID {
	return s.id
}

// CourierID returns the courier the batch pays.
func (s *Settlement) CourierID() kernel.UUID {
	return s.courierID
}

// PeriodStart returns the start of the aggregation window.
func (s *Settlement) PeriodStart() time.Time {
	return s.periodStart
}

// PeriodEnd returns the end of the aggregation window.
func (s *Settlement) PeriodEnd() time.Time {
	return s.periodEnd
}

// Total returns the sum of the item amounts.
func (s *Settlement) Total() kernel.Money {
	return s.total
}

// Status returns the settlement's lifecycle state.
func (s *Settlement) Status() Status {
	return s.status
}

// PaymentReference returns the payout reference, empty until paid.
func (s *Settlement) PaymentReference() string {
	return s.paymentReference
}

// PaymentMethod returns how the payout was made, empty until paid.
func (s *Settlement) PaymentMethod() string {
	return s.paymentMethod
}

// PaidAt returns when the payout happened, nil until paid.
func (s *Settlement) PaidAt() *time.Time {
	return s.paidAt
}

// Items returns a copy of the settlement lines.
func (s *Settlement) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// SubOrderIDs returns the sub-orders the settlement covers, in item order.
func (s *Settlement) SubOrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(s.items))
	for i, item := range s.items {
		ids[i] = item.SubOrderID()
	}
	return ids
}

// Approve moves a pending settlement to approved.
func (s *Settlement) Approve() error {
	if s.status == StatusVoided {
		return ErrSettlementIsVoided
	}
	newStatus, err := s.status.Approve()
	if err != nil {
		return err
	}
	s.status = newStatus
	return nil
}

// MarkPaid stamps the payment metadata and moves the settlement to paid.
// Allowed from pending and approved; re-invoking on a paid settlement
// returns ErrSettlementAlreadyPaid.
func (s *Settlement) MarkPaid(info PaymentInfo) error {
	if s.status == StatusVoided {
		return ErrSettlementIsVoided
	}
	if s.status == StatusPaid {
		return ErrSettlementAlreadyPaid
	}
	if err := info.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Pay()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.paymentReference = info.Reference
	s.paymentMethod = info.Method
	paidAt := info.PaidAt
	s.paidAt = &paidAt
	return nil
}

// Void excludes an unpaid settlement from double-inclusion checks so its
// sub-orders can be re-aggregated.
func (s *Settlement) Void() error {
	if s.status == StatusPaid {
		return ErrSettlementAlreadyPaid
	}
	s.status = StatusVoided
	return nil
}

func (s *Settlement) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Settlement) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	s.courierID = courierID
	return nil
}

func (s *Settlement) setPeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return errs.NewValueIsRequiredError("period")
	}
	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			"period", fmt.Errorf("end %s precedes start %s", end, start))
	}
	s.periodStart = start
	s.periodEnd = end
	return nil
}

func (s *Settlement) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrSettlementHasNoItems
	}

	total := kernel.ZeroMoney()
	seen := make(map[kernel.UUID]bool, len(items))
	for _, item := range items {
		if seen[item.SubOrderID()] {
			return errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("sub-order %s appears twice", item.SubOrderID()))
		}
		seen[item.SubOrderID()] = true
		total = total.Add(item.Amount())
	}

	s.items = make([]Item, len(items))
	copy(s.items, items)
	s.total = total
	return nil
}
