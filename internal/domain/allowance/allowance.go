// Package allowance derives per-day spending allowances from period totals.
package allowance

import (
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// DailyBudget returns (monthly + incomes - fixed) / days, rounded to cents and
// floored at zero. Deductions never produce a negative allowance.
func DailyBudget(monthly, incomes, fixed valueobject.Amount, daysInPeriod int) valueobject.Amount {
	if daysInPeriod <= 0 {
		return valueobject.ZeroAmount
	}
	available := AvailableForPeriod(monthly, incomes, fixed).Decimal()
	perDay := available.Div(decimal.NewFromInt(int64(daysInPeriod)))
	return valueobject.AmountFloor(perDay).RoundCents()
}

// AvailableForPeriod returns monthly + incomes - fixed. Unlike DailyBudget it may be negative.
func AvailableForPeriod(monthly, incomes, fixed valueobject.Amount) valueobject.SignedAmount {
	return monthly.Add(incomes).Signed().Sub(fixed)
}
