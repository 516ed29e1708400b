package adapters

import (
	"time"

	"github.com/daily-budget/backend/internal/application/adapter"
)

type systemClock struct{}

// NewSystemClock returns a clock reading the wall clock.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
