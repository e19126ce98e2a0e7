package kernel

import (
	"fmt"
	"math"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or ZeroMoney constructors")

// Money is a value object for currency amounts. All amounts in the engine
// (subtotals, shipping fees, settlement amounts) are held to two decimal
// places; every arithmetic operation rounds its result before returning.
//
// Money is immutable. Operations return new values.
//
// Example:
//
//	flat, _ := kernel.NewMoney(1500)
//	perKg, _ := kernel.NewMoney(200)
//	cost := flat.Add(perKg.MulFloat(2)) // 1900.00
type Money struct {
	amount float64

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a non-negative amount, rounded to two
// decimal places. Rejects negative, NaN, and infinite amounts.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%f is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%f is negative", amount))
	}

	return Money{
		amount: round2(amount),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// Amount returns the rounded numeric amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts, rounded to two decimal places.
func (m Money) Add(other Money) Money {
	return Money{amount: round2(m.amount + other.amount), guard: guard.NewConstructorGuard()}
}

// MulFloat returns the amount multiplied by a factor, rounded to two decimal
// places. Used for per-kg pricing (rate × total weight).
func (m Money) MulFloat(factor float64) Money {
	return Money{amount: round2(m.amount * factor), guard: guard.NewConstructorGuard()}
}

// SplitEven divides the amount into n shares at two decimal places. Shares
// are floored so the remainder the last share absorbs is never negative,
// and the shares always sum back to the original amount.
func (m Money) SplitEven(n int) ([]Money, error) {
	if n <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"parts", fmt.Errorf("%d is not greater than 0", n))
	}

	share := math.Floor(m.amount/float64(n)*100) / 100
	shares := make([]Money, n)
	for i := range n - 1 {
		shares[i] = Money{amount: share, guard: guard.NewConstructorGuard()}
	}
	shares[n-1] = Money{
		amount: round2(m.amount - share*float64(n-1)),
		guard:  guard.NewConstructorGuard(),
	}

	return shares, nil
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// GreaterOrEqual reports whether the amount is at least the other amount.
// Used for free-shipping threshold checks.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.amount >= other.amount
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String renders the amount with two decimals, for logs and descriptions.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
