package budget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/allowance"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// GetDashboardInput represents the input for the dashboard snapshot.
// ViewMonth and ViewYear are given together or not at all.
type GetDashboardInput struct {
	UserID    uuid.UUID
	ViewMonth *int
	ViewYear  *int
	Today     valueobject.Date
}

// GetDashboardOutput is a read-only snapshot of a period.
type GetDashboardOutput struct {
	User               *entity.User
	Budget             *entity.Budget // nil when the label has no budget
	Period             period.BudgetPeriod
	EffectiveStartDay  int
	UserStartDay       int
	DailyBudget        valueobject.Amount
	TotalFixedExpenses valueobject.Amount
	TotalIncomes       valueobject.Amount
	AvailableForPeriod valueobject.SignedAmount
	BudgetCopied       bool
	IsCurrentPeriod    bool
	IsFuturePeriod     bool
	DisplayLabel       string
}

// GetDashboardUseCase builds the dashboard snapshot for a label.
type GetDashboardUseCase struct {
	userRepo   adapter.UserRepository
	budgetRepo adapter.BudgetRepository
	refresher  *carryover.Refresher
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	userRepo adapter.UserRepository,
	budgetRepo adapter.BudgetRepository,
	refresher *carryover.Refresher,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:   userRepo,
		budgetRepo: budgetRepo,
		refresher:  refresher,
	}
}

// Execute builds the snapshot.
//
// Without an explicit label the one containing today is used, derived from the
// user's own start day. When that current label has no budget yet, the previous
// label's budget is copied forward with its start day override dropped.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	if (input.ViewMonth == nil) != (input.ViewYear == nil) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"month and year must be given together",
			nil,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, userError(err)
	}
	userStartDay := user.StartDay()

	label := period.ForDate(input.Today, userStartDay)
	if input.ViewMonth != nil {
		label, err = period.NewLabel(*input.ViewMonth, *input.ViewYear)
		if err != nil {
			return nil, domainerror.NewLabelError(err)
		}
	}

	budget, copied, err := uc.loadBudget(ctx, user, label, input.Today)
	if err != nil {
		return nil, err
	}

	totals, err := uc.refresher.LoadTotals(ctx, user.ID, label.Month, label.Year)
	if err != nil {
		return nil, err
	}

	effectiveStartDay := budget.ResolveStartDay(user)
	p := period.ComputeLabel(label, effectiveStartDay)

	monthly := valueobject.ZeroAmount
	if budget != nil {
		monthly = budget.MonthlyAmount
	}

	return &GetDashboardOutput{
		User:               user,
		Budget:             budget,
		Period:             p,
		EffectiveStartDay:  effectiveStartDay,
		UserStartDay:       userStartDay,
		DailyBudget:        allowance.DailyBudget(monthly, totals.Incomes, totals.FixedExpenses, p.DaysInPeriod),
		TotalFixedExpenses: totals.FixedExpenses,
		TotalIncomes:       totals.Incomes,
		AvailableForPeriod: allowance.AvailableForPeriod(monthly, totals.Incomes, totals.FixedExpenses),
		BudgetCopied:       copied,
		IsCurrentPeriod:    period.IsCurrent(label.Month, label.Year, effectiveStartDay, input.Today),
		IsFuturePeriod:     period.IsFuture(label.Month, label.Year, effectiveStartDay, input.Today),
		DisplayLabel:       period.FormatDisplay(p, effectiveStartDay, user.Locale),
	}, nil
}

// loadBudget returns the label's budget, copying the previous label's budget
// forward when the label is current and has none.
func (uc *GetDashboardUseCase) loadBudget(ctx context.Context, user *entity.User, label period.Label, today valueobject.Date) (*entity.Budget, bool, error) {
	budget, err := uc.budgetRepo.FindByLabel(ctx, user.ID, label.Month, label.Year)
	if err == nil {
		return budget, false, nil
	}
	if !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, false, fmt.Errorf("failed to find budget: %w", err)
	}

	if !period.IsCurrent(label.Month, label.Year, user.StartDay(), today) {
		return nil, false, nil
	}

	prevLabel := label.Previous()
	prev, err := uc.budgetRepo.FindByLabel(ctx, user.ID, prevLabel.Month, prevLabel.Year)
	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to find previous budget: %w", err)
	}

	copied := prev.CopyTo(label.Month, label.Year)
	if err := uc.budgetRepo.Create(ctx, copied); err != nil {
		if !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
			return nil, false, fmt.Errorf("failed to copy budget: %w", err)
		}
		// A concurrent request copied it first.
		existing, findErr := uc.budgetRepo.FindByLabel(ctx, user.ID, label.Month, label.Year)
		if findErr != nil {
			return nil, false, fmt.Errorf("failed to find budget: %w", findErr)
		}
		return existing, false, nil
	}

	slog.Info("Budget copied from previous period",
		"userID", user.ID,
		"month", int(label.Month),
		"year", label.Year,
		"amount", copied.MonthlyAmount.String(),
	)

	return copied, true, nil
}
