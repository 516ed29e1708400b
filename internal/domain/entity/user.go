// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Month start day bounds. Days 29-31 are not accepted as a user setting; periods
// still clamp internally when a start day exceeds a short month.
const (
	MinMonthStartDay = 1
	MaxMonthStartDay = 28
)

// DefaultLocale is used when a user has not chosen a locale.
const DefaultLocale = "en"

// User represents a user of the Daily Budget system.
type User struct {
	ID            uuid.UUID
	Email         string
	Name          string
	PasswordHash  string
	MonthStartDay *int // nil means calendar months
	Locale        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Locale:       DefaultLocale,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// StartDay returns the user's configured month start day, defaulting to 1.
func (u *User) StartDay() int {
	if u == nil || u.MonthStartDay == nil {
		return MinMonthStartDay
	}
	return *u.MonthStartDay
}

// ValidMonthStartDay reports whether day is an accepted month start day.
func ValidMonthStartDay(day int) bool {
	return day >= MinMonthStartDay && day <= MaxMonthStartDay
}
