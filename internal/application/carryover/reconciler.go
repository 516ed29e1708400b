package carryover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// Reconciler recounts a day's spending from the stored expenses. It repairs a
// ledger row left behind when an expense write succeeded but the row update failed.
type Reconciler struct {
	expenseRepo  adapter.ExpenseRepository
	dailyLogRepo adapter.DailyLogRepository
}

// NewReconciler creates a new Reconciler instance.
func NewReconciler(expenseRepo adapter.ExpenseRepository, dailyLogRepo adapter.DailyLogRepository) *Reconciler {
	return &Reconciler{
		expenseRepo:  expenseRepo,
		dailyLogRepo: dailyLogRepo,
	}
}

// Reconcile sets TotalSpent of the (user, date) row to the sum of that day's
// expenses. It returns nil without error when no row exists for the date.
func (r *Reconciler) Reconcile(ctx context.Context, userID uuid.UUID, date valueobject.Date) (*entity.DailyLog, error) {
	log, err := r.dailyLogRepo.FindByDate(ctx, userID, date)
	if errors.Is(err, domainerror.ErrDailyLogNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find daily log: %w", err)
	}

	expenses, err := r.expenseRepo.FindByDateRange(ctx, userID, date, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	spent := entity.TotalExpenses(expenses)
	if spent.Equal(log.TotalSpent) {
		return log, nil
	}

	slog.Info("Reconciling daily log spending",
		"userID", userID,
		"date", date.String(),
		"stored", log.TotalSpent.String(),
		"counted", spent.String(),
	)

	log.SetSpent(spent)
	if err := r.dailyLogRepo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update daily log: %w", err)
	}
	return log, nil
}
