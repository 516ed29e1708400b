package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// FixedExpense is a recurring monthly obligation subtracted from every period's budget.
type FixedExpense struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Amount    valueobject.Amount
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFixedExpense creates a new FixedExpense entity.
func NewFixedExpense(userID uuid.UUID, name string, amount valueobject.Amount) *FixedExpense {
	now := time.Now().UTC()

	return &FixedExpense{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalFixedExpenses sums the amounts of all fixed expenses.
func TotalFixedExpenses(items []*FixedExpense) valueobject.Amount {
	total := valueobject.ZeroAmount
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
