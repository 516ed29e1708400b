// Package budget contains the budget, dashboard and today use cases.
package budget

import (
	"errors"
	"fmt"

	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

// amountError converts a valueobject.NewPositiveAmount failure into a coded budget error.
func amountError(err error) error {
	return domainerror.NewBudgetError(domainerror.ErrCodeInvalidAmount, err.Error(), err)
}

// userError maps a user lookup failure, keeping storage errors distinct from not found.
func userError(err error) error {
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return domainerror.NewBudgetError(domainerror.ErrCodeBudgetUserNotFound, "user not found", err)
	}
	return fmt.Errorf("failed to find user: %w", err)
}

// startDayError reports an out-of-range start day.
func startDayError() error {
	return domainerror.NewBudgetError(domainerror.ErrCodeInvalidStartDay,
		"start day must be between 1 and 28", domainerror.ErrInvalidStartDay)
}

