package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{db: db}
}

// Create inserts a budget. A second budget for the same label fails with ErrBudgetAlreadyExists.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget))
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrBudgetAlreadyExists
		}
		return result.Error
	}
	return nil
}

// Update saves the amount and start day override of an existing budget.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budget.UpdatedAt = time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(map[string]any{
			"monthly_amount": budget.MonthlyAmount.Decimal(),
			"start_day":      budget.StartDay,
			"updated_at":     budget.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// FindByLabel retrieves the budget of a user for (month, year).
func (r *budgetRepository) FindByLabel(ctx context.Context, userID uuid.UUID, month time.Month, year int) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ? AND year = ?", userID, int(month), year).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}
