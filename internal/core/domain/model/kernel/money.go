package kernel

import (
	"fmt"

	"storepanel/internal/pkg/errs"
)

// Money is a non-negative amount in Algerian dinars (DZD). Prices in the
// store are whole-dinar figures, so no fractional unit is modeled.
type Money struct {
	amount int64
}

// NewMoney creates a Money value. Negative amounts are rejected.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Amount returns the amount in whole dinars.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual reports whether both values carry the same amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount with its currency, e.g. "3500 DZD".
func (m Money) String() string {
	return fmt.Sprintf("%d DZD", m.amount)
}
