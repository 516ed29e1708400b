package valueobject

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewAmount_RejectsNegative(t *testing.T) {
	if _, err := NewAmount(decimal.NewFromInt(-1)); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
	if _, err := NewAmount(decimal.Zero); err != nil {
		t.Errorf("zero should be a valid amount, got %v", err)
	}
}

func TestAmount_SubFloor(t *testing.T) {
	if got := MustAmount("10").SubFloor(MustAmount("15.50")); !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
	if got := MustAmount("10").SubFloor(MustAmount("2.25")); got.String() != "7.75" {
		t.Errorf("expected 7.75, got %s", got)
	}
}

func TestSignedAmount_KeepsDebt(t *testing.T) {
	remaining := MustAmount("20").Signed().Add(MustSigned("-5.50")).Sub(MustAmount("30"))
	if !remaining.IsNegative() {
		t.Fatalf("expected a negative balance, got %s", remaining)
	}
	if remaining.String() != "-15.50" {
		t.Errorf("expected -15.50, got %s", remaining)
	}
}

func TestSumAmounts(t *testing.T) {
	if got := SumAmounts(MustAmount("1.10"), MustAmount("2.20"), MustAmount("3.30")); got.String() != "6.60" {
		t.Errorf("expected 6.60, got %s", got)
	}
	if got := SumAmounts(); !got.IsZero() {
		t.Errorf("expected zero, got %s", got)
	}
}

func TestNewPositiveAmount(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{input: "0.01"},
		{input: "1500.50"},
		{input: "0", wantErr: ErrNonPositiveAmount},
		{input: "-3", wantErr: ErrNonPositiveAmount},
		{input: "10.005", wantErr: ErrAmountPrecision},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewPositiveAmount(decimal.RequireFromString(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
