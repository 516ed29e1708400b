package fixedexpense

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

// DeleteFixedExpenseInput represents the input for fixed expense deletion.
type DeleteFixedExpenseInput struct {
	UserID         uuid.UUID
	FixedExpenseID uuid.UUID
	Today          valueobject.Date
}

// DeleteFixedExpenseOutput represents the output of fixed expense deletion.
type DeleteFixedExpenseOutput struct {
	DailyLog *entity.DailyLog
}

// DeleteFixedExpenseUseCase handles fixed expense deletion logic.
type DeleteFixedExpenseUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
	refresher        *carryover.Refresher
	locker           adapter.UserLocker
}

// NewDeleteFixedExpenseUseCase creates a new DeleteFixedExpenseUseCase instance.
func NewDeleteFixedExpenseUseCase(
	fixedExpenseRepo adapter.FixedExpenseRepository,
	refresher *carryover.Refresher,
	locker adapter.UserLocker,
) *DeleteFixedExpenseUseCase {
	return &DeleteFixedExpenseUseCase{
		fixedExpenseRepo: fixedExpenseRepo,
		refresher:        refresher,
		locker:           locker,
	}
}

// Execute deletes the fixed expense and refreshes today's allowance.
func (uc *DeleteFixedExpenseUseCase) Execute(ctx context.Context, input DeleteFixedExpenseInput) (*DeleteFixedExpenseOutput, error) {
	output := &DeleteFixedExpenseOutput{}

	err := uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		item, err := uc.fixedExpenseRepo.FindByID(ctx, input.FixedExpenseID)
		if err != nil && !errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
			return fmt.Errorf("failed to find fixed expense: %w", err)
		}
		// Other users' items are reported as missing.
		if item == nil || item.UserID != input.UserID {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeFixedExpenseNotFound,
				"fixed expense not found",
				domainerror.ErrFixedExpenseNotFound,
			)
		}

		if err := uc.fixedExpenseRepo.Delete(ctx, item.ID); err != nil {
			return fmt.Errorf("failed to delete fixed expense: %w", err)
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
