package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// SetBudgetInput represents the input for setting a period budget.
type SetBudgetInput struct {
	UserID           uuid.UUID
	MonthlyAmount    decimal.Decimal
	Month            int
	Year             int
	StartDayOverride *int
	Today            valueobject.Date
}

// SetBudgetOutput represents the output of setting a period budget.
type SetBudgetOutput struct {
	Budget   *entity.Budget
	Created  bool
	DailyLog *entity.DailyLog // nil unless the label is the current period
}

// SetBudgetUseCase upserts the budget of a label and refreshes today's ledger.
type SetBudgetUseCase struct {
	userRepo   adapter.UserRepository
	budgetRepo adapter.BudgetRepository
	refresher  *carryover.Refresher
	locker     adapter.UserLocker
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(
	userRepo adapter.UserRepository,
	budgetRepo adapter.BudgetRepository,
	refresher *carryover.Refresher,
	locker adapter.UserLocker,
) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		userRepo:   userRepo,
		budgetRepo: budgetRepo,
		refresher:  refresher,
		locker:     locker,
	}
}

// Execute performs the budget upsert.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	amount, err := valueobject.NewPositiveAmount(input.MonthlyAmount)
	if err != nil {
		return nil, amountError(err)
	}
	label, err := period.NewLabel(input.Month, input.Year)
	if err != nil {
		return nil, domainerror.NewLabelError(err)
	}
	if input.StartDayOverride != nil && !entity.ValidMonthStartDay(*input.StartDayOverride) {
		return nil, startDayError()
	}

	output := &SetBudgetOutput{}
	err = uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return userError(err)
		}

		budget, err := uc.budgetRepo.FindByLabel(ctx, input.UserID, label.Month, label.Year)
		switch {
		case errors.Is(err, domainerror.ErrBudgetNotFound):
			budget = entity.NewBudget(input.UserID, amount, label.Month, label.Year, input.StartDayOverride)
			if err := uc.budgetRepo.Create(ctx, budget); err != nil {
				return fmt.Errorf("failed to create budget: %w", err)
			}
			output.Created = true
		case err != nil:
			return fmt.Errorf("failed to find budget: %w", err)
		default:
			budget.MonthlyAmount = amount
			budget.StartDay = input.StartDayOverride
			if err := uc.budgetRepo.Update(ctx, budget); err != nil {
				return fmt.Errorf("failed to update budget: %w", err)
			}
		}
		output.Budget = budget

		log, err := uc.refresher.RefreshBudget(ctx, user, budget, input.Today)
		if err != nil {
			return err
		}
		output.DailyLog = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Budget set",
		"userID", input.UserID,
		"month", input.Month,
		"year", input.Year,
		"amount", amount.String(),
		"created", output.Created,
	)

	return output, nil
}
