package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
)

// FixedExpenseRepository defines the interface for fixed expense persistence operations.
type FixedExpenseRepository interface {
	Create(ctx context.Context, item *entity.FixedExpense) error

	// FindByID returns domainerror.ErrFixedExpenseNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error)

	// FindByUser returns every fixed expense of the user, oldest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedExpense, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
