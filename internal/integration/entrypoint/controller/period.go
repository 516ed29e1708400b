package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// PeriodController exposes the period calculator. It has no state.
type PeriodController struct{}

// NewPeriodController creates a new period controller instance.
func NewPeriodController() *PeriodController {
	return &PeriodController{}
}

// Compute handles GET /periods requests.
func (c *PeriodController) Compute(ctx *gin.Context) {
	_, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var q dto.PeriodQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	ctx.JSON(http.StatusOK, periodDetail(time.Month(q.Month), q.Year, startDayOrDefault(q.StartDay), q.Locale, today))
}

// ForDate handles GET /periods/for-date requests.
func (c *PeriodController) ForDate(ctx *gin.Context) {
	_, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var q dto.PeriodForDateQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeInvalidDate), err)
		return
	}
	date, err := valueobject.ParseDate(q.Date)
	if err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeInvalidDate), err)
		return
	}

	startDay := startDayOrDefault(q.StartDay)
	label := period.ForDate(date, startDay)
	ctx.JSON(http.StatusOK, periodDetail(label.Month, label.Year, startDay, q.Locale, today))
}

func periodDetail(month time.Month, year, startDay int, locale string, today valueobject.Date) dto.PeriodDetailResponse {
	return dto.PeriodDetailResponse{
		PeriodResponse: dto.ToPeriodResponse(period.Compute(month, year, startDay), startDay, locale),
		StartDay:       startDay,
		IsCurrent:      period.IsCurrent(month, year, startDay, today),
		IsFuture:       period.IsFuture(month, year, startDay, today),
		Previous:       dto.ToPeriodResponse(period.Previous(month, year, startDay), startDay, locale),
		Next:           dto.ToPeriodResponse(period.Next(month, year, startDay), startDay, locale),
	}
}

func startDayOrDefault(day int) int {
	if day == 0 {
		return period.CalendarStartDay
	}
	return day
}
