package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// Budget is the monthly amount a user allots to the period labelled (Month, Year).
type Budget struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	MonthlyAmount valueobject.Amount
	Month         time.Month
	Year          int
	StartDay      *int // overrides the user's month start day for this label
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(userID uuid.UUID, amount valueobject.Amount, month time.Month, year int, startDay *int) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:            uuid.New(),
		UserID:        userID,
		MonthlyAmount: amount,
		Month:         month,
		Year:          year,
		StartDay:      startDay,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ResolveStartDay returns the start day in effect for the budget's label:
// the budget override, then the user's setting, then 1.
func (b *Budget) ResolveStartDay(user *User) int {
	if b != nil && b.StartDay != nil {
		return *b.StartDay
	}
	return user.StartDay()
}

// CopyTo returns a new budget for another label with the same amount and no start day override.
func (b *Budget) CopyTo(month time.Month, year int) *Budget {
	return NewBudget(b.UserID, b.MonthlyAmount, month, year, nil)
}
