package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create stores a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID. Returns domainerror.ErrExpenseNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByDateRange returns the user's expenses dated within [start, end], ordered by date then creation.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end valueobject.Date) ([]*entity.Expense, error)

	// Delete removes an expense.
	Delete(ctx context.Context, id uuid.UUID) error
}
