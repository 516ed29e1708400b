// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// MaxDescriptionLength is the maximum allowed length for expense descriptions.
const MaxDescriptionLength = 255

// AddExpenseInput represents the input for recording an expense.
type AddExpenseInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Description *string
	Category    entity.ExpenseCategory
	Date        *valueobject.Date // defaults to Today
	Today       valueobject.Date
}

// AddExpenseOutput represents the output of recording an expense.
type AddExpenseOutput struct {
	Expense  *entity.Expense
	DailyLog *entity.DailyLog // nil when no ledger row exists for the expense date
}

// AddExpenseUseCase records an expense and applies it to that day's ledger row.
type AddExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	dailyLogRepo adapter.DailyLogRepository
	locker       adapter.UserLocker
	metrics      adapter.LedgerMetrics
}

// NewAddExpenseUseCase creates a new AddExpenseUseCase instance.
func NewAddExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	dailyLogRepo adapter.DailyLogRepository,
	locker adapter.UserLocker,
	metrics adapter.LedgerMetrics,
) *AddExpenseUseCase {
	if metrics == nil {
		metrics = adapter.NopLedgerMetrics{}
	}
	return &AddExpenseUseCase{
		expenseRepo:  expenseRepo,
		dailyLogRepo: dailyLogRepo,
		locker:       locker,
		metrics:      metrics,
	}
}

// Execute records the expense.
//
// Only dates that already have a ledger row are reflected in the ledger. A
// backdated expense on a day without a row is stored but not applied, and the
// output carries a nil DailyLog.
func (uc *AddExpenseUseCase) Execute(ctx context.Context, input AddExpenseInput) (*AddExpenseOutput, error) {
	amount, err := valueobject.NewPositiveAmount(input.Amount)
	if err != nil {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeInvalidExpenseAmount, err.Error(), err)
	}
	if !input.Category.IsValid() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("category must be one of %s", categoryList()),
			domainerror.ErrInvalidCategory,
		)
	}
	description, err := normalizeDescription(input.Description)
	if err != nil {
		return nil, err
	}

	date := input.Today
	if input.Date != nil {
		date = *input.Date
	}

	output := &AddExpenseOutput{}
	err = uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		expense := entity.NewExpense(input.UserID, amount, description, input.Category, date)
		if err := uc.expenseRepo.Create(ctx, expense); err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}
		output.Expense = expense
		uc.metrics.IncrExpenseAdded(string(expense.Category))

		log, err := uc.dailyLogRepo.FindByDate(ctx, input.UserID, date)
		if errors.Is(err, domainerror.ErrDailyLogNotFound) {
			slog.Debug("No daily log for expense date, ledger left untouched",
				"userID", input.UserID,
				"date", date.String(),
				"expenseID", expense.ID,
			)
			return nil
		}
		if err != nil {
			return uc.staleLedger(expense, err)
		}

		log.AddSpent(amount)
		if err := uc.dailyLogRepo.Update(ctx, log); err != nil {
			return uc.staleLedger(expense, err)
		}
		output.DailyLog = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// staleLedger reports a ledger failure after the expense row was stored. The
// expense stays recorded; `budgetctl refresh` recounts the day's spending from it.
func (uc *AddExpenseUseCase) staleLedger(expense *entity.Expense, err error) error {
	slog.Error("Expense recorded but daily log not updated",
		"userID", expense.UserID,
		"date", expense.Date.String(),
		"expenseID", expense.ID,
		"amount", expense.Amount.String(),
		"error", err,
	)
	return fmt.Errorf("failed to apply expense %s to daily log: %w", expense.ID, err)
}

func normalizeDescription(description *string) (*string, error) {
	if description == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil, nil
	}
	if len(trimmed) > MaxDescriptionLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			nil,
		)
	}
	return &trimmed, nil
}

func categoryList() string {
	names := make([]string, len(entity.ExpenseCategories))
	for i, c := range entity.ExpenseCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
