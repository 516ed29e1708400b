package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create stores a new budget. Returns domainerror.ErrBudgetAlreadyExists when the
	// user already has a budget for the label.
	Create(ctx context.Context, budget *entity.Budget) error

	// Update persists the amount and start day of an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// FindByLabel retrieves the budget for (month, year). Returns domainerror.ErrBudgetNotFound when missing.
	FindByLabel(ctx context.Context, userID uuid.UUID, month time.Month, year int) (*entity.Budget, error)
}
