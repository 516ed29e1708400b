package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// FixedExpenseModel represents the fixed_expenses table in the database.
type FixedExpenseModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the FixedExpenseModel.
func (FixedExpenseModel) TableName() string {
	return "fixed_expenses"
}

// ToEntity converts a FixedExpenseModel to a domain FixedExpense entity.
func (m *FixedExpenseModel) ToEntity() *entity.FixedExpense {
	return &entity.FixedExpense{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Amount:    valueobject.AmountFloor(m.Amount),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FixedExpenseFromEntity creates a FixedExpenseModel from a domain FixedExpense entity.
func FixedExpenseFromEntity(item *entity.FixedExpense) *FixedExpenseModel {
	return &FixedExpenseModel{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		Amount:    item.Amount.Decimal(),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
