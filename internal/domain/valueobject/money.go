package valueobject

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// centPlaces is the number of decimal places kept for calculated amounts.
const centPlaces = 2

var (
	// ErrNegativeAmount is returned when a negative value is used where an Amount is required.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNonPositiveAmount is returned when an amount entered by a user is not above zero.
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")

	// ErrAmountPrecision is returned when an amount has fractions of a cent.
	ErrAmountPrecision = errors.New("amount must have at most two decimal places")
)

// Amount is a non-negative money value: budgets, daily allowances, spending.
type Amount struct {
	value decimal.Decimal
}

// SignedAmount is a money value that may be negative: carryover and remaining balances.
// Keeping it a separate type keeps debt from being floor-clamped by accident.
type SignedAmount struct {
	value decimal.Decimal
}

// ZeroAmount is the zero Amount.
var ZeroAmount = Amount{value: decimal.Zero}

// ZeroSigned is the zero SignedAmount.
var ZeroSigned = SignedAmount{value: decimal.Zero}

// NewAmount validates that d is non-negative.
func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() {
		return Amount{}, fmt.Errorf("%w: %s", ErrNegativeAmount, d.String())
	}
	return Amount{value: d}, nil
}

// NewPositiveAmount validates a user-entered amount: above zero, whole cents.
func NewPositiveAmount(d decimal.Decimal) (Amount, error) {
	if !d.IsPositive() {
		return Amount{}, ErrNonPositiveAmount
	}
	if !d.Equal(d.Round(centPlaces)) {
		return Amount{}, ErrAmountPrecision
	}
	return Amount{value: d}, nil
}

// MustAmount parses s into an Amount and panics on failure.
func MustAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	a, err := NewAmount(d)
	if err != nil {
		panic(err)
	}
	return a
}

// AmountFloor returns d, or zero when d is negative.
func AmountFloor(d decimal.Decimal) Amount {
	if d.IsNegative() {
		return ZeroAmount
	}
	return Amount{value: d}
}

// Decimal returns the underlying decimal.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// IsZero reports whether a is zero.
func (a Amount) IsZero() bool { return a.value.IsZero() }

// IsPositive reports whether a is strictly greater than zero.
func (a Amount) IsPositive() bool { return a.value.IsPositive() }

// Add returns a + b.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }

// SubFloor returns a - b, floored at zero.
func (a Amount) SubFloor(b Amount) Amount { return AmountFloor(a.value.Sub(b.value)) }

// Signed converts a to a SignedAmount.
func (a Amount) Signed() SignedAmount { return SignedAmount{value: a.value} }

// Equal reports whether a and b have the same value.
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }

// RoundCents rounds to 2 decimal places, half away from zero.
func (a Amount) RoundCents() Amount { return Amount{value: a.value.Round(centPlaces)} }

// String returns the fixed two-place representation.
func (a Amount) String() string { return a.value.StringFixed(centPlaces) }

// MarshalJSON encodes the amount as a JSON number string with two places.
func (a Amount) MarshalJSON() ([]byte, error) { return []byte(`"` + a.String() + `"`), nil }

// SumAmounts adds all amounts.
func SumAmounts(amounts ...Amount) Amount {
	total := ZeroAmount
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// NewSignedAmount wraps d.
func NewSignedAmount(d decimal.Decimal) SignedAmount { return SignedAmount{value: d} }

// MustSigned parses s into a SignedAmount and panics on failure.
func MustSigned(s string) SignedAmount {
	return SignedAmount{value: decimal.RequireFromString(s)}
}

// Decimal returns the underlying decimal.
func (s SignedAmount) Decimal() decimal.Decimal { return s.value }

// IsNegative reports whether s is below zero.
func (s SignedAmount) IsNegative() bool { return s.value.IsNegative() }

// Add returns s + other.
func (s SignedAmount) Add(other SignedAmount) SignedAmount {
	return SignedAmount{value: s.value.Add(other.value)}
}

// Sub returns s - a.
func (s SignedAmount) Sub(a Amount) SignedAmount {
	return SignedAmount{value: s.value.Sub(a.value)}
}

// Equal reports whether s and other have the same value.
func (s SignedAmount) Equal(other SignedAmount) bool { return s.value.Equal(other.value) }

// String returns the fixed two-place representation.
func (s SignedAmount) String() string { return s.value.StringFixed(centPlaces) }

// MarshalJSON encodes the amount as a JSON string with two places.
func (s SignedAmount) MarshalJSON() ([]byte, error) { return []byte(`"` + s.String() + `"`), nil }
