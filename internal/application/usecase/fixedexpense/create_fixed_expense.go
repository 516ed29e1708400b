// Package fixedexpense contains use cases for recurring monthly obligations.
package fixedexpense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// MaxNameLength is the maximum allowed length for fixed expense names.
const MaxNameLength = 100

// CreateFixedExpenseInput represents the input for fixed expense creation.
type CreateFixedExpenseInput struct {
	UserID uuid.UUID
	Name   string
	Amount decimal.Decimal
	Today  valueobject.Date
}

// CreateFixedExpenseOutput represents the output of fixed expense creation.
type CreateFixedExpenseOutput struct {
	FixedExpense *entity.FixedExpense
	DailyLog     *entity.DailyLog
}

// CreateFixedExpenseUseCase handles fixed expense creation logic.
type CreateFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	refresher        *carryover.Refresher
	locker           adapter.UserLocker
}

// NewCreateFixedExpenseUseCase creates a new CreateFixedExpenseUseCase instance.
func NewCreateFixedExpenseUseCase(
	fixedExpenseRepo adapter.FixedExpenseRepository,
	refresher *carryover.Refresher,
	locker adapter.UserLocker,
) *CreateFixedExpenseUseCase {
	return &CreateFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		refresher:        refresher,
		locker:           locker,
	}
}

// Execute stores the fixed expense and refreshes today's allowance.
func (uc *CreateFixedExpenseUseCase) Execute(ctx context.Context, input CreateFixedExpenseInput) (*CreateFixedExpenseOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > MaxNameLength {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			fmt.Sprintf("name is required and must not exceed %d characters", MaxNameLength),
			nil,
		)
	}
	amount, err := valueobject.NewPositiveAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeInvalidAmount, err.Error(), err)
	}

	output := &CreateFixedExpenseOutput{}
	err = uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		item := entity.NewFixedExpense(input.UserID, name, amount)
		if err := uc.fixedExpenseRepo.Create(ctx, item); err != nil {
			return fmt.Errorf("failed to create fixed expense: %w", err)
		}
		output.FixedExpense = item

		log, err := uc.refresher.Refresh(ctx, input.UserID, input.Today)
		if err != nil {
			return err
		}
		output.DailyLog = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Fixed expense created", "userID", input.UserID, "fixedExpenseID", output.FixedExpense.ID)

	return output, nil
}
