package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// ExpenseModel represents the expenses table in the database.
// Date holds YYYY-MM-DD, which sorts the same as the calendar.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_expenses_user_date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description *string         `gorm:"type:varchar(255)"`
	Category    string          `gorm:"type:varchar(20);not null"`
	Date        string          `gorm:"type:varchar(10);not null;index:idx_expenses_user_date"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() (*entity.Expense, error) {
	date, err := valueobject.ParseDate(m.Date)
	if err != nil {
		return nil, fmt.Errorf("expense %s: %w", m.ID, err)
	}

	return &entity.Expense{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      valueobject.AmountFloor(m.Amount),
		Description: m.Description,
		Category:    entity.ExpenseCategory(m.Category),
		Date:        date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		UserID:      expense.UserID,
		Amount:      expense.Amount.Decimal(),
		Description: expense.Description,
		Category:    string(expense.Category),
		Date:        expense.Date.String(),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
