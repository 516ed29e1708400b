// Package income contains use cases for extra income within a period.
package income

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for income descriptions.
const MaxDescriptionLength = 255

// CreateIncomeInput represents the input for income creation. Without Month and
// Year the income goes to the label containing Today.
type CreateIncomeInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description *string
	Month       *int
	Year        *int
	Today       valueobject.Date
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income   *entity.Income
	DailyLog *entity.DailyLog
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	userRepo   adapter.UserRepository
	incomeRepo adapter.IncomeRepository
	refresher  *carryover.Refresher
	locker     adapter.UserLocker
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(
	userRepo adapter.UserRepository,
	incomeRepo adapter.IncomeRepository,
	refresher *carryover.Refresher,
	locker adapter.UserLocker,
) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		userRepo:   userRepo,
		incomeRepo: incomeRepo,
		refresher:  refresher,
		locker:     locker,
	}
}

// Execute stores the income and refreshes today's allowance.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	amount, err := valueobject.NewPositiveAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeInvalidAmount, err.Error(), err)
	}
	if (input.Month == nil) != (input.Year == nil) {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeMissingBudgetFields, "month and year must be given together", nil)
	}
	var description *string
	if input.Description != nil {
		if trimmed := strings.TrimSpace(*input.Description); trimmed != "" {
			if len(trimmed) > MaxDescriptionLength {
				return nil, domainerror.NewBudgetError(
					domainerror.ErrCodeMissingBudgetFields,
					fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
					nil,
				)
			}
			description = &trimmed
		}
	}

	output := &CreateIncomeOutput{}
	err = uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		label, err := uc.resolveLabel(ctx, input)
		if err != nil {
			return err
		}

		income := entity.NewIncome(input.UserID, amount, description, label.Month, label.Year)
		if err := uc.incomeRepo.Create(ctx, income); err != nil {
			return fmt.Errorf("failed to create income: %w", err)
		}
		output.Income = income

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

	slog.Info("Income created",
		"userID", input.UserID,
		"incomeID", output.Income.ID,
		"month", int(output.Income.Month),
		"year", output.Income.Year,
	)

	return output, nil
}

func (uc *CreateIncomeUseCase) resolveLabel(ctx context.Context, input CreateIncomeInput) (period.Label, error) {
	if input.Month != nil {
		label, err := period.NewLabel(*input.Month, *input.Year)
		if err != nil {
			return period.Label{}, domainerror.NewLabelError(err)
		}
		return label, nil
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return period.Label{}, domainerror.NewBudgetError(domainerror.ErrCodeBudgetUserNotFound, "user not found", err)
	}
	if err != nil {
		return period.Label{}, fmt.Errorf("failed to find user: %w", err)
	}
	return period.ForDate(input.Today, user.StartDay()), nil
}
