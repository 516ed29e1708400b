package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// DailyLog is the per-day ledger row.
//
// Remaining always equals DailyBudget + Carryover - TotalSpent. Mutators keep the
// invariant by calling Recompute; Remaining is never assigned anywhere else.
type DailyLog struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        valueobject.Date
	DailyBudget valueobject.Amount
	Carryover   valueobject.SignedAmount
	TotalSpent  valueobject.Amount
	Remaining   valueobject.SignedAmount
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewDailyLog creates the ledger row for a day with nothing spent yet.
func NewDailyLog(userID uuid.UUID, date valueobject.Date, dailyBudget valueobject.Amount, carryover valueobject.SignedAmount) *DailyLog {
	now := time.Now().UTC()

	log := &DailyLog{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		DailyBudget: dailyBudget,
		Carryover:   carryover,
		TotalSpent:  valueobject.ZeroAmount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	log.Recompute()
	return log
}

// Recompute derives Remaining from the other fields.
func (l *DailyLog) Recompute() {
	l.Remaining = l.DailyBudget.Signed().Add(l.Carryover).Sub(l.TotalSpent)
	l.UpdatedAt = time.Now().UTC()
}

// SetDailyBudget replaces the day's allowance, leaving carryover and spending untouched.
func (l *DailyLog) SetDailyBudget(amount valueobject.Amount) {
	l.DailyBudget = amount
	l.Recompute()
}

// AddSpent records spending against the day.
func (l *DailyLog) AddSpent(amount valueobject.Amount) {
	l.TotalSpent = l.TotalSpent.Add(amount)
	l.Recompute()
}

// RemoveSpent reverses spending, never letting TotalSpent go below zero.
func (l *DailyLog) RemoveSpent(amount valueobject.Amount) {
	l.TotalSpent = l.TotalSpent.SubFloor(amount)
	l.Recompute()
}

// SetSpent replaces the day's spending with a recounted total.
func (l *DailyLog) SetSpent(amount valueobject.Amount) {
	l.TotalSpent = amount
	l.Recompute()
}
