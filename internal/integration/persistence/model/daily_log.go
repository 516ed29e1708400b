package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// DailyLogModel represents the daily_logs table. The unique (user_id, date)
// index is what turns a racing second insert into ErrDuplicatedKey.
type DailyLogModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_daily_logs_user_date"`
	Date        string          `gorm:"type:varchar(10);not null;uniqueIndex:idx_daily_logs_user_date"`
	DailyBudget decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Carryover   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TotalSpent  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Remaining   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DailyLogModel.
func (DailyLogModel) TableName() string {
	return "daily_logs"
}

// ToEntity converts a DailyLogModel to a domain DailyLog entity.
// Remaining is derived again rather than trusted from the row.
func (m *DailyLogModel) ToEntity() (*entity.DailyLog, error) {
	date, err := valueobject.ParseDate(m.Date)
	if err != nil {
		return nil, fmt.Errorf("daily log %s: %w", m.ID, err)
	}

	log := &entity.DailyLog{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        date,
		DailyBudget: valueobject.AmountFloor(m.DailyBudget),
		Carryover:   valueobject.NewSignedAmount(m.Carryover),
		TotalSpent:  valueobject.AmountFloor(m.TotalSpent),
		CreatedAt:   m.CreatedAt,
	}
	log.Recompute()
	log.UpdatedAt = m.UpdatedAt
	return log, nil
}

// DailyLogFromEntity creates a DailyLogModel from a domain DailyLog entity.
func DailyLogFromEntity(log *entity.DailyLog) *DailyLogModel {
	return &DailyLogModel{
		ID:          log.ID,
		UserID:      log.UserID,
		Date:        log.Date.String(),
		DailyBudget: log.DailyBudget.Decimal(),
		Carryover:   log.Carryover.Decimal(),
		TotalSpent:  log.TotalSpent.Decimal(),
		Remaining:   log.Remaining.Decimal(),
		CreatedAt:   log.CreatedAt,
		UpdatedAt:   log.UpdatedAt,
	}
}

// All returns every model managed by the persistence layer, in migration order.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&BudgetModel{},
		&FixedExpenseModel{},
		&IncomeModel{},
		&ExpenseModel{},
		&DailyLogModel{},
	}
}
