// Package period computes budget periods that may start on any day of the month.
//
// A period is labelled by (month, year). With a start day of 1 the period is the
// calendar month. With any other start day the period begins on that day of the
// label month and ends the day before the next period's start, so the date span
// may run into the following calendar month. Start days that do not exist in a
// month are clamped down to the month's last day.
package period

import (
	"errors"
	"time"

	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// Supported label years.
const (
	MinYear = 1900
	MaxYear = 9999
)

// Label validation errors.
var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year out of range")
)

// CalendarStartDay is the start day that makes periods match calendar months.
const CalendarStartDay = 1

// Label identifies a budget period by the month it is named after.
type Label struct {
	Month time.Month
	Year  int
}

// NewLabel validates month and year.
func NewLabel(month, year int) (Label, error) {
	if month < 1 || month > 12 {
		return Label{}, ErrInvalidMonth
	}
	if year < MinYear || year > MaxYear {
		return Label{}, ErrInvalidYear
	}
	return Label{Month: time.Month(month), Year: year}, nil
}

// Previous returns the label of the preceding calendar month.
func (l Label) Previous() Label {
	if l.Month == time.January {
		return Label{Month: time.December, Year: l.Year - 1}
	}
	return Label{Month: l.Month - 1, Year: l.Year}
}

// Next returns the label of the following calendar month.
func (l Label) Next() Label {
	if l.Month == time.December {
		return Label{Month: time.January, Year: l.Year + 1}
	}
	return Label{Month: l.Month + 1, Year: l.Year}
}

// BudgetPeriod is the derived date span for a label and start day.
type BudgetPeriod struct {
	Month        time.Month
	Year         int
	StartDate    valueobject.Date
	EndDate      valueobject.Date
	DaysInPeriod int
}

// Label returns the period's label.
func (p BudgetPeriod) Label() Label {
	return Label{Month: p.Month, Year: p.Year}
}

// Contains reports whether d falls inside the period, bounds included.
func (p BudgetPeriod) Contains(d valueobject.Date) bool {
	return p.StartDate.Compare(d) <= 0 && d.Compare(p.EndDate) <= 0
}

// Dates returns every date of the period in order.
func (p BudgetPeriod) Dates() []valueobject.Date {
	dates := make([]valueobject.Date, 0, p.DaysInPeriod)
	for d := p.StartDate; !d.After(p.EndDate); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

// EffectiveStartDay clamps requested to the last valid day of (month, year).
func EffectiveStartDay(requested int, month time.Month, year int) int {
	last := valueobject.DaysIn(month, year)
	if requested > last {
		return last
	}
	return requested
}

// Compute returns the period labelled (month, year) for startDay.
func Compute(month time.Month, year int, startDay int) BudgetPeriod {
	var start, end valueobject.Date
	if startDay <= CalendarStartDay {
		start = valueobject.NewDate(year, month, 1)
		end = valueobject.NewDate(year, month, valueobject.DaysIn(month, year))
	} else {
		next := Label{Month: month, Year: year}.Next()
		start = valueobject.NewDate(year, month, EffectiveStartDay(startDay, month, year))
		end = valueobject.NewDate(next.Year, next.Month, EffectiveStartDay(startDay-1, next.Month, next.Year))
	}

	return BudgetPeriod{
		Month:        month,
		Year:         year,
		StartDate:    start,
		EndDate:      end,
		DaysInPeriod: start.DaysUntil(end) + 1,
	}
}

// ComputeLabel is Compute for a Label.
func ComputeLabel(l Label, startDay int) BudgetPeriod {
	return Compute(l.Month, l.Year, startDay)
}

// ForDate returns the label of the period that contains d.
func ForDate(d valueobject.Date, startDay int) Label {
	own := Label{Month: d.Month(), Year: d.Year()}
	if startDay <= CalendarStartDay {
		return own
	}
	if d.Day() >= EffectiveStartDay(startDay, d.Month(), d.Year()) {
		return own
	}
	return own.Previous()
}

// Previous returns the period before the one labelled (month, year).
func Previous(month time.Month, year int, startDay int) BudgetPeriod {
	return ComputeLabel(Label{Month: month, Year: year}.Previous(), startDay)
}

// Next returns the period after the one labelled (month, year).
func Next(month time.Month, year int, startDay int) BudgetPeriod {
	return ComputeLabel(Label{Month: month, Year: year}.Next(), startDay)
}

// IsCurrent reports whether (month, year) is the label that contains today.
func IsCurrent(month time.Month, year int, startDay int, today valueobject.Date) bool {
	return ForDate(today, startDay) == Label{Month: month, Year: year}
}

// IsFuture reports whether the period labelled (month, year) starts after today.
func IsFuture(month time.Month, year int, startDay int, today valueobject.Date) bool {
	return Compute(month, year, startDay).StartDate.After(today)
}

// AreInSamePeriod reports whether both dates map to the same label.
func AreInSamePeriod(d1, d2 valueobject.Date, startDay int) bool {
	return ForDate(d1, startDay) == ForDate(d2, startDay)
}
