package fixedexpense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ListFixedExpensesInput represents the input for listing fixed expenses.
type ListFixedExpensesInput struct {
	UserID uuid.UUID
}

// ListFixedExpensesOutput represents the output of listing fixed expenses.
type ListFixedExpensesOutput struct {
	FixedExpenses []*entity.FixedExpense
	Total         valueobject.Amount
}

// ListFixedExpensesUseCase handles listing fixed expenses.
type ListFixedExpensesUseCase struct {
	fixedExpenseRepo adapter.FixedExpenseRepository
}

// NewListFixedExpensesUseCase creates a new ListFixedExpensesUseCase instance.
func NewListFixedExpensesUseCase(fixedExpenseRepo adapter.FixedExpenseRepository) *ListFixedExpensesUseCase {
	return &ListFixedExpensesUseCase{fixedExpenseRepo: fixedExpenseRepo}
}

// Execute lists the user's fixed expenses with their total.
func (uc *ListFixedExpensesUseCase) Execute(ctx context.Context, input ListFixedExpensesInput) (*ListFixedExpensesOutput, error) {
	items, err := uc.fixedExpenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed expenses: %w", err)
	}

	return &ListFixedExpensesOutput{
		FixedExpenses: items,
		Total:         entity.TotalFixedExpenses(items),
	}, nil
}
