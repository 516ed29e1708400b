package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// DailyLogRepository defines the interface for the per-day ledger.
type DailyLogRepository interface {
	// FindByDate retrieves the ledger row for (user, date). Returns domainerror.ErrDailyLogNotFound when missing.
	FindByDate(ctx context.Context, userID uuid.UUID, date valueobject.Date) (*entity.DailyLog, error)

	// Create stores a new ledger row. Returns domainerror.ErrDailyLogAlreadyExists when
	// a row for (user, date) already exists.
	Create(ctx context.Context, log *entity.DailyLog) error

	// Update persists the budget, carryover, spending and remaining columns of a row.
	Update(ctx context.Context, log *entity.DailyLog) error

	// FindByDateRange returns the user's ledger rows within [start, end] ordered by date.
	FindByDateRange(ctx context.Context, userID uuid.UUID, start, end valueobject.Date) ([]*entity.DailyLog, error)
}
