package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// GetTodayInput represents the input for the today view.
type GetTodayInput struct {
	UserID uuid.UUID
	Today  valueobject.Date
}

// GetTodayOutput combines the current period snapshot with today's ledger row.
type GetTodayOutput struct {
	Dashboard *GetDashboardOutput
	DailyLog  *entity.DailyLog // nil when the current period has no budget
	Expenses  []*entity.Expense
}

// GetTodayUseCase materializes today's ledger row on first read.
type GetTodayUseCase struct {
	dashboard   *GetDashboardUseCase
	refresher   *carryover.Refresher
	expenseRepo adapter.ExpenseRepository
	locker      adapter.UserLocker
}

// NewGetTodayUseCase creates a new GetTodayUseCase instance.
func NewGetTodayUseCase(
	dashboard *GetDashboardUseCase,
	refresher *carryover.Refresher,
	expenseRepo adapter.ExpenseRepository,
	locker adapter.UserLocker,
) *GetTodayUseCase {
	return &GetTodayUseCase{
		dashboard:   dashboard,
		refresher:   refresher,
		expenseRepo: expenseRepo,
		locker:      locker,
	}
}

// Execute loads the current snapshot and initializes or refreshes today's row.
func (uc *GetTodayUseCase) Execute(ctx context.Context, input GetTodayInput) (*GetTodayOutput, error) {
	output := &GetTodayOutput{}

	err := uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		snapshot, err := uc.dashboard.Execute(ctx, GetDashboardInput{UserID: input.UserID, Today: input.Today})
		if err != nil {
			return err
		}
		output.Dashboard = snapshot

		if snapshot.Budget == nil {
			return nil
		}

		log, err := uc.refresher.RefreshBudget(ctx, snapshot.User, snapshot.Budget, input.Today)
		if err != nil {
			return err
		}
		output.DailyLog = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, input.UserID, input.Today, input.Today)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	output.Expenses = expenses

	return output, nil
}
