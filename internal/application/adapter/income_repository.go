package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error

	// FindByID returns domainerror.ErrIncomeNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)

	// FindByLabel returns the incomes recorded for (month, year), oldest first.
	FindByLabel(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]*entity.Income, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
