package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	UserID   uuid.UUID
	IncomeID uuid.UUID
	Today    valueobject.Date
}

// DeleteIncomeOutput represents the output of income deletion.
type DeleteIncomeOutput struct {
	DailyLog *entity.DailyLog
}

// DeleteIncomeUseCase handles income deletion logic.
type DeleteIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
	refresher  *carryover.Refresher
	locker     adapter.UserLocker
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(
	incomeRepo adapter.IncomeRepository,
	refresher *carryover.Refresher,
	locker adapter.UserLocker,
) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		incomeRepo: incomeRepo,
		refresher:  refresher,
		locker:     locker,
	}
}

// Execute deletes the income and refreshes today's allowance.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) (*DeleteIncomeOutput, error) {
	output := &DeleteIncomeOutput{}

	err := uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		income, err := uc.incomeRepo.FindByID(ctx, input.IncomeID)
		if err != nil && !errors.Is(err, domainerror.ErrIncomeNotFound) {
			return fmt.Errorf("failed to find income: %w", err)
		}
		if income == nil || income.UserID != input.UserID {
			return domainerror.NewBudgetError(domainerror.ErrCodeIncomeNotFound, "income not found", domainerror.ErrIncomeNotFound)
		}

		if err := uc.incomeRepo.Delete(ctx, income.ID); err != nil {
			return fmt.Errorf("failed to delete income: %w", err)
		}

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

	return output, nil
}
