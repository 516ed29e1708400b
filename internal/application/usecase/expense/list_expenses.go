package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ListExpensesInput selects either a single date or a labelled period.
// With neither, the expenses of Today are listed.
type ListExpensesInput struct {
	UserID uuid.UUID
	Date   *valueobject.Date
	Month  *int
	Year   *int
	Today  valueobject.Date
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses  []*entity.Expense
	StartDate valueobject.Date
	EndDate   valueobject.Date
	Total     valueobject.Amount
}

// ListExpensesUseCase lists a user's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	refresher   *carryover.Refresher
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository, refresher *carryover.Refresher) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
		refresher:   refresher,
	}
}

// Execute lists the expenses.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	if (input.Month == nil) != (input.Year == nil) {
		return nil, domainerror.NewExpenseError(domainerror.ErrCodeMissingExpenseFields, "month and year must be given together", nil)
	}

	start, end := input.Today, input.Today
	switch {
	case input.Date != nil:
		start, end = *input.Date, *input.Date
	case input.Month != nil:
		label, err := period.NewLabel(*input.Month, *input.Year)
		if err != nil {
			return nil, domainerror.NewLabelError(err)
		}
		p, err := uc.refresher.PeriodForLabel(ctx, input.UserID, label)
		if err != nil {
			return nil, err
		}
		start, end = p.StartDate, p.EndDate
	}

	expenses, err := uc.expenseRepo.FindByDateRange(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := valueobject.ZeroAmount
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{
		Expenses:  expenses,
		StartDate: start,
		EndDate:   end,
		Total:     total,
	}, nil
}
