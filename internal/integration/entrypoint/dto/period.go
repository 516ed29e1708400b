package dto

import (
	"github.com/daily-budget/backend/internal/domain/period"
)

// PeriodQuery represents the query parameters of GET /periods.
type PeriodQuery struct {
	Month    int    `form:"month" binding:"required,min=1,max=12"`
	Year     int    `form:"year" binding:"required,min=1900,max=9999"`
	StartDay int    `form:"start_day" binding:"omitempty,min=1,max=28"`
	Locale   string `form:"locale"`
}

// PeriodForDateQuery represents the query parameters of GET /periods/for-date.
type PeriodForDateQuery struct {
	Date     string `form:"date" binding:"required,isodate"`
	StartDay int    `form:"start_day" binding:"omitempty,min=1,max=28"`
	Locale   string `form:"locale"`
}

// PeriodResponse represents a budget period in API responses.
type PeriodResponse struct {
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DaysInPeriod int    `json:"days_in_period"`
	DisplayLabel string `json:"display_label"`
}

// PeriodDetailResponse adds the neighbouring periods and today's position.
type PeriodDetailResponse struct {
	PeriodResponse
	StartDay  int            `json:"start_day"`
	IsCurrent bool           `json:"is_current"`
	IsFuture  bool           `json:"is_future"`
	Previous  PeriodResponse `json:"previous"`
	Next      PeriodResponse `json:"next"`
}

// ToPeriodResponse converts a period to its DTO.
func ToPeriodResponse(p period.BudgetPeriod, startDay int, locale string) PeriodResponse {
	return PeriodResponse{
		Month:        int(p.Month),
		Year:         p.Year,
		StartDate:    p.StartDate.String(),
		EndDate:      p.EndDate.String(),
		DaysInPeriod: p.DaysInPeriod,
		DisplayLabel: period.FormatDisplay(p, startDay, locale),
	}
}
