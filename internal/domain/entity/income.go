package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// Income is extra money received within a labelled period.
type Income struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      valueobject.Amount
	Description *string
	Month       time.Month
	Year        int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(userID uuid.UUID, amount valueobject.Amount, description *string, month time.Month, year int) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Month:       month,
		Year:        year,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TotalIncomes sums the amounts of all incomes.
func TotalIncomes(items []*Income) valueobject.Amount {
	total := valueobject.ZeroAmount
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
