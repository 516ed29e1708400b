package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseOutput represents the output of deleting an expense.
type DeleteExpenseOutput struct {
	Expense  *entity.Expense
	DailyLog *entity.DailyLog // nil when no ledger row exists for the expense date
}

// DeleteExpenseUseCase deletes an expense and reverses it on that day's ledger row.
type DeleteExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	dailyLogRepo adapter.DailyLogRepository
	locker       adapter.UserLocker
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	dailyLogRepo adapter.DailyLogRepository,
	locker adapter.UserLocker,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:  expenseRepo,
		dailyLogRepo: dailyLogRepo,
		locker:       locker,
	}
}

// Execute deletes the expense. The stored amount and date are used for the
// reversal, so it exactly undoes the matching AddExpense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	output := &DeleteExpenseOutput{}

	err := uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return domainerror.NewExpenseError(domainerror.ErrCodeExpenseNotFound, "expense not found", err)
		}
		if err != nil {
			return fmt.Errorf("failed to find expense: %w", err)
		}
		if expense.UserID != input.UserID {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeNotAuthorizedExpense,
				"not authorized to delete this expense",
				domainerror.ErrNotAuthorizedToModifyExpense,
			)
		}

		if err := uc.expenseRepo.Delete(ctx, expense.ID); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		output.Expense = expense

		log, err := uc.dailyLogRepo.FindByDate(ctx, input.UserID, expense.Date)
		if errors.Is(err, domainerror.ErrDailyLogNotFound) {
			return nil
		}
		if err != nil {
			return uc.staleLedger(expense, fmt.Errorf("failed to find daily log: %w", err))
		}

		log.RemoveSpent(expense.Amount)
		if err := uc.dailyLogRepo.Update(ctx, log); err != nil {
			return uc.staleLedger(expense, fmt.Errorf("failed to update daily log: %w", err))
		}
		output.DailyLog = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// staleLedger reports a ledger failure after the expense row was removed.
// `budgetctl refresh` recounts the day's spending from the remaining expenses.
func (uc *DeleteExpenseUseCase) staleLedger(expense *entity.Expense, err error) error {
	slog.Error("Expense deleted but daily log not updated",
		"userID", expense.UserID,
		"date", expense.Date.String(),
		"expenseID", expense.ID,
		"amount", expense.Amount.String(),
		"error", err,
	)
	return err
}
