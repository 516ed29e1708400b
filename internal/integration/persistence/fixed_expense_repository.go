package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/persistence/model"
)

// fixedExpenseRepository implements the adapter.FixedExpenseRepository interface.
type fixedExpenseRepository struct {
	db *gorm.DB
}

// NewFixedExpenseRepository creates a new fixed expense repository instance.
func NewFixedExpenseRepository(db *gorm.DB) adapter.FixedExpenseRepository {
	return &fixedExpenseRepository{db: db}
}

// Create inserts a fixed expense.
func (r *fixedExpenseRepository) Create(ctx context.Context, item *entity.FixedExpense) error {
	return r.db.WithContext(ctx).Create(model.FixedExpenseFromEntity(item)).Error
}

// FindByID retrieves a fixed expense by its ID.
func (r *fixedExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FixedExpense, error) {
	var itemModel model.FixedExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&itemModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrFixedExpenseNotFound
		}
		return nil, result.Error
	}
	return itemModel.ToEntity(), nil
}

// FindByUser lists a user's fixed expenses, oldest first.
func (r *fixedExpenseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.FixedExpense, error) {
	var itemModels []model.FixedExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&itemModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.FixedExpense, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToEntity()
	}
	return items, nil
}

// Delete removes a fixed expense.
func (r *fixedExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.FixedExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrFixedExpenseNotFound
	}
	return nil
}
