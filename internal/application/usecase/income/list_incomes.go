package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ListIncomesInput represents the input for listing incomes of a label.
type ListIncomesInput struct {
	UserID uuid.UUID
	Month  *int
	Year   *int
	Today  valueobject.Date
}

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Month   int
	Year    int
	Incomes []*entity.Income
	Total   valueobject.Amount
}

// ListIncomesUseCase handles listing incomes.
type ListIncomesUseCase struct {
	userRepo   adapter.UserRepository
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(userRepo adapter.UserRepository, incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{
		userRepo:   userRepo,
		incomeRepo: incomeRepo,
	}
}

// Execute lists the incomes of the requested label, or of the current one.
func (uc *ListIncomesUseCase) Execute(ctx context.Context, input ListIncomesInput) (*ListIncomesOutput, error) {
	if (input.Month == nil) != (input.Year == nil) {
		return nil, domainerror.NewBudgetError(domainerror.ErrCodeMissingBudgetFields, "month and year must be given together", nil)
	}

	var label period.Label
	if input.Month != nil {
		var err error
		label, err = period.NewLabel(*input.Month, *input.Year)
		if err != nil {
			return nil, domainerror.NewLabelError(err)
		}
	} else {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewBudgetError(domainerror.ErrCodeBudgetUserNotFound, "user not found", err)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		label = period.ForDate(input.Today, user.StartDay())
	}

	incomes, err := uc.incomeRepo.FindByLabel(ctx, input.UserID, label.Month, label.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{
		Month:   int(label.Month),
		Year:    label.Year,
		Incomes: incomes,
		Total:   entity.TotalIncomes(incomes),
	}, nil
}
