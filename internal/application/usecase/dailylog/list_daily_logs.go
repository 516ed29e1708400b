// Package dailylog contains the ledger history use case.
package dailylog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ListDailyLogsInput represents the input for listing ledger rows of a label.
type ListDailyLogsInput struct {
	UserID uuid.UUID
	Month  *int
	Year   *int
	Today  valueobject.Date
}

// ListDailyLogsOutput represents the output of listing ledger rows.
type ListDailyLogsOutput struct {
	Period     period.BudgetPeriod
	DailyLogs  []*entity.DailyLog
	TotalSpent valueobject.Amount
}

// ListDailyLogsUseCase lists the ledger rows of a period.
type ListDailyLogsUseCase struct {
	userRepo     adapter.UserRepository
	dailyLogRepo adapter.DailyLogRepository
	refresher    *carryover.Refresher
}

// NewListDailyLogsUseCase creates a new ListDailyLogsUseCase instance.
func NewListDailyLogsUseCase(
	userRepo adapter.UserRepository,
	dailyLogRepo adapter.DailyLogRepository,
	refresher *carryover.Refresher,
) *ListDailyLogsUseCase {
	return &ListDailyLogsUseCase{
		userRepo:     userRepo,
		dailyLogRepo: dailyLogRepo,
		refresher:    refresher,
	}
}

// Execute lists the ledger rows of the requested label, or of the current one.
func (uc *ListDailyLogsUseCase) Execute(ctx context.Context, input ListDailyLogsInput) (*ListDailyLogsOutput, error) {
	if (input.Month == nil) != (input.Year == nil) {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeMissingBudgetFields, "month and year must be given together", nil)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetUserNotFound, "user not found", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	label := period.ForDate(input.Today, user.StartDay())
	if input.Month != nil {
		label, err = period.NewLabel(*input.Month, *input.Year)
		if err != nil {
			return nil, domainerror.NewLabelError(err)
		}
	}

	p, err := uc.refresher.PeriodForLabel(ctx, input.UserID, label)
	if err != nil {
		return nil, err
	}

	logs, err := uc.dailyLogRepo.FindByDateRange(ctx, input.UserID, p.StartDate, p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily logs: %w", err)
	}

	spent := valueobject.ZeroAmount
	for _, log := range logs {
		spent = spent.Add(log.TotalSpent)
	}

	return &ListDailyLogsOutput{
		Period:     p,
		DailyLogs:  logs,
		TotalSpent: spent,
	}, nil
}
