package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// IncomeModel represents the incomes table in the database.
type IncomeModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_incomes_user_label"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description *string         `gorm:"type:varchar(255)"`
	Month       int             `gorm:"not null;index:idx_incomes_user_label"`
	Year        int             `gorm:"not null;index:idx_incomes_user_label"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "incomes"
}

// ToEntity converts an IncomeModel to a domain Income entity.
func (m *IncomeModel) ToEntity() *entity.Income {
	return &entity.Income{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      valueobject.AmountFloor(m.Amount),
		Description: m.Description,
		Month:       time.Month(m.Month),
		Year:        m.Year,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain Income entity.
func IncomeFromEntity(income *entity.Income) *IncomeModel {
	return &IncomeModel{
		ID:          income.ID,
		UserID:      income.UserID,
		Amount:      income.Amount.Decimal(),
		Description: income.Description,
		Month:       int(income.Month),
		Year:        income.Year,
		CreatedAt:   income.CreatedAt,
		UpdatedAt:   income.UpdatedAt,
	}
}
