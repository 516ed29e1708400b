package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/usecase/budget"
	"github.com/daily-budget/backend/internal/domain/entity"
)

// SetBudgetRequest represents the request body for PUT /budgets.
type SetBudgetRequest struct {
	MonthlyAmount *decimal.Decimal `json:"monthly_amount" binding:"required"`
	Month         int              `json:"month" binding:"required"`
	Year          int              `json:"year" binding:"required"`
	StartDay      *int             `json:"start_day,omitempty"`
}

// DashboardQuery represents the query parameters of GET /dashboard.
type DashboardQuery struct {
	Month *int `form:"month"`
	Year  *int `form:"year"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID            string    `json:"id"`
	MonthlyAmount string    `json:"monthly_amount"`
	Month         int       `json:"month"`
	Year          int       `json:"year"`
	StartDay      *int      `json:"start_day"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SetBudgetResponse represents the response of PUT /budgets.
type SetBudgetResponse struct {
	Budget   BudgetResponse    `json:"budget"`
	Created  bool              `json:"created"`
	DailyLog *DailyLogResponse `json:"daily_log"`
}

// DashboardResponse represents a period snapshot.
type DashboardResponse struct {
	Period             PeriodResponse  `json:"period"`
	Budget             *BudgetResponse `json:"budget"`
	EffectiveStartDay  int             `json:"effective_start_day"`
	UserStartDay       int             `json:"user_start_day"`
	DailyBudget        string          `json:"daily_budget"`
	TotalFixedExpenses string          `json:"total_fixed_expenses"`
	TotalIncomes       string          `json:"total_incomes"`
	AvailableForPeriod string          `json:"available_for_period"`
	BudgetCopied       bool            `json:"budget_copied"`
	IsCurrentPeriod    bool            `json:"is_current_period"`
	IsFuturePeriod     bool            `json:"is_future_period"`
}

// TodayResponse represents the response of GET /today.
type TodayResponse struct {
	Dashboard DashboardResponse `json:"dashboard"`
	DailyLog  *DailyLogResponse `json:"daily_log"`
	Expenses  []ExpenseResponse `json:"expenses"`
}

// ToBudgetResponse converts a domain Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget) *BudgetResponse {
	if b == nil {
		return nil
	}
	return &BudgetResponse{
		ID:            b.ID.String(),
		MonthlyAmount: b.MonthlyAmount.String(),
		Month:         int(b.Month),
		Year:          b.Year,
		StartDay:      b.StartDay,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ToDashboardResponse converts a dashboard snapshot to its DTO.
func ToDashboardResponse(out *budget.GetDashboardOutput) DashboardResponse {
	p := ToPeriodResponse(out.Period, out.EffectiveStartDay, out.User.Locale)
	p.DisplayLabel = out.DisplayLabel

	return DashboardResponse{
		Period:             p,
		Budget:             ToBudgetResponse(out.Budget),
		EffectiveStartDay:  out.EffectiveStartDay,
		UserStartDay:       out.UserStartDay,
		DailyBudget:        out.DailyBudget.String(),
		TotalFixedExpenses: out.TotalFixedExpenses.String(),
		TotalIncomes:       out.TotalIncomes.String(),
		AvailableForPeriod: out.AvailableForPeriod.String(),
		BudgetCopied:       out.BudgetCopied,
		IsCurrentPeriod:    out.IsCurrentPeriod,
		IsFuturePeriod:     out.IsFuturePeriod,
	}
}

// ToTodayResponse converts the today view to its DTO.
func ToTodayResponse(out *budget.GetTodayOutput) TodayResponse {
	return TodayResponse{
		Dashboard: ToDashboardResponse(out.Dashboard),
		DailyLog:  ToDailyLogResponse(out.DailyLog),
		Expenses:  ToExpenseResponses(out.Expenses),
	}
}
