package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// BudgetModel represents the budgets table. One row per user and label.
type BudgetModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_user_label"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Month         int             `gorm:"not null;uniqueIndex:idx_budgets_user_label"`
	Year          int             `gorm:"not null;uniqueIndex:idx_budgets_user_label"`
	StartDay      *int            `gorm:"type:smallint"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:            m.ID,
		UserID:        m.UserID,
		MonthlyAmount: valueobject.AmountFloor(m.MonthlyAmount),
		Month:         time.Month(m.Month),
		Year:          m.Year,
		StartDay:      m.StartDay,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:            budget.ID,
		UserID:        budget.UserID,
		MonthlyAmount: budget.MonthlyAmount.Decimal(),
		Month:         int(budget.Month),
		Year:          budget.Year,
		StartDay:      budget.StartDay,
		CreatedAt:     budget.CreatedAt,
		UpdatedAt:     budget.UpdatedAt,
	}
}
