package carryover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// Totals are the period-level amounts that feed the daily allowance.
type Totals struct {
	FixedExpenses valueobject.Amount
	Incomes       valueobject.Amount
}

// Refresher loads the stored budget inputs for a user and runs the Engine on them.
type Refresher struct {
	userRepo         adapter.UserRepository
	budgetRepo       adapter.BudgetRepository
	fixedExpenseRepo adapter.FixedExpenseRepository
	incomeRepo       adapter.IncomeRepository
	engine           *Engine
}

// NewRefresher creates a new Refresher instance.
func NewRefresher(
	userRepo adapter.UserRepository,
	budgetRepo adapter.BudgetRepository,
	fixedExpenseRepo adapter.FixedExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	engine *Engine,
) *Refresher {
	return &Refresher{
		userRepo:         userRepo,
		budgetRepo:       budgetRepo,
		fixedExpenseRepo: fixedExpenseRepo,
		incomeRepo:       incomeRepo,
		engine:           engine,
	}
}

// Refresh initializes or refreshes the user's ledger row for today.
// It returns nil without error when the current period has no budget.
func (r *Refresher) Refresh(ctx context.Context, userID uuid.UUID, today valueobject.Date) (*entity.DailyLog, error) {
	user, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	label := period.ForDate(today, user.StartDay())
	budget, err := r.budgetRepo.FindByLabel(ctx, userID, label.Month, label.Year)
	if errors.Is(err, domainerror.ErrBudgetNotFound) {
		slog.Debug("No budget for current period, skipping ledger refresh",
			"userID", userID,
			"month", int(label.Month),
			"year", label.Year,
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	return r.RefreshBudget(ctx, user, budget, today)
}

// RefreshBudget runs the Engine for a known budget. It returns nil without error
// when today is outside the budget's period.
func (r *Refresher) RefreshBudget(ctx context.Context, user *entity.User, budget *entity.Budget, today valueobject.Date) (*entity.DailyLog, error) {
	startDay := budget.ResolveStartDay(user)
	if !period.IsCurrent(budget.Month, budget.Year, startDay, today) {
		return nil, nil
	}

	totals, err := r.LoadTotals(ctx, user.ID, budget.Month, budget.Year)
	if err != nil {
		return nil, err
	}

	return r.engine.InitializeOrRefresh(ctx, Input{
		UserID:             user.ID,
		MonthlyAmount:      budget.MonthlyAmount,
		TotalFixedExpenses: totals.FixedExpenses,
		TotalIncomes:       totals.Incomes,
		Month:              budget.Month,
		Year:               budget.Year,
		StartDay:           startDay,
		Today:              today,
	})
}

// LoadTotals sums the user's fixed expenses and the incomes recorded for (month, year).
func (r *Refresher) LoadTotals(ctx context.Context, userID uuid.UUID, month time.Month, year int) (Totals, error) {
	fixed, err := r.fixedExpenseRepo.FindByUser(ctx, userID)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	incomes, err := r.incomeRepo.FindByLabel(ctx, userID, month, year)
	if err != nil {
		return Totals{}, fmt.Errorf("failed to list incomes: %w", err)
	}

	return Totals{
		FixedExpenses: entity.TotalFixedExpenses(fixed),
		Incomes:       entity.TotalIncomes(incomes),
	}, nil
}

// PeriodForLabel returns the date span of a label using the start day in effect for it.
func (r *Refresher) PeriodForLabel(ctx context.Context, userID uuid.UUID, label period.Label) (period.BudgetPeriod, error) {
	user, err := r.userRepo.FindByID(ctx, userID)
	if err != nil {
		return period.BudgetPeriod{}, err
	}

	budget, err := r.budgetRepo.FindByLabel(ctx, userID, label.Month, label.Year)
	if err != nil && !errors.Is(err, domainerror.ErrBudgetNotFound) {
		return period.BudgetPeriod{}, fmt.Errorf("failed to find budget: %w", err)
	}

	return period.ComputeLabel(label, budget.ResolveStartDay(user)), nil
}
