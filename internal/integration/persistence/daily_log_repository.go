package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/persistence/model"
)

// dailyLogRepository implements the adapter.DailyLogRepository interface.
type dailyLogRepository struct {
	db *gorm.DB
}

// NewDailyLogRepository creates a new daily log repository instance.
func NewDailyLogRepository(db *gorm.DB) adapter.DailyLogRepository {
	return &dailyLogRepository{db: db}
}

// FindByDate retrieves the ledger row of a user for a date.
func (r *dailyLogRepository) FindByDate(ctx context.Context, userID uuid.UUID, date valueobject.Date) (*entity.DailyLog, error) {
	var logModel model.DailyLogModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date.String()).
		First(&logModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDailyLogNotFound
		}
		return nil, result.Error
	}
	return logModel.ToEntity()
}

// Create inserts a ledger row. A second row for the same user and date fails
// with ErrDailyLogAlreadyExists.
func (r *dailyLogRepository) Create(ctx context.Context, log *entity.DailyLog) error {
	result := r.db.WithContext(ctx).Create(model.DailyLogFromEntity(log))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrDailyLogAlreadyExists
		}
		return result.Error
	}
	return nil
}

// Update saves the amounts of an existing ledger row.
func (r *dailyLogRepository) Update(ctx context.Context, log *entity.DailyLog) error {
	result := r.db.WithContext(ctx).
		Model(&model.DailyLogModel{}).
		Where("id = ?", log.ID).
		Updates(map[string]any{
			"daily_budget": log.DailyBudget.Decimal(),
			"carryover":    log.Carryover.Decimal(),
			"total_spent":  log.TotalSpent.Decimal(),
			"remaining":    log.Remaining.Decimal(),
			"updated_at":   log.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDailyLogNotFound
	}
	return nil
}

// FindByDateRange lists a user's ledger rows dated within [start, end], ordered by date.
func (r *dailyLogRepository) FindByDateRange(ctx context.Context, userID uuid.UUID, start, end valueobject.Date) ([]*entity.DailyLog, error) {
	var logModels []model.DailyLogModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start.String(), end.String()).
		Order("date ASC").
		Find(&logModels)
	if result.Error != nil {
		return nil, result.Error
	}

	logs := make([]*entity.DailyLog, 0, len(logModels))
	for i := range logModels {
		log, err := logModels[i].ToEntity()
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, nil
}
