package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/usecase/budget"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles the budget, dashboard and today endpoints.
type BudgetController struct {
	setBudgetUseCase    *budget.SetBudgetUseCase
	getDashboardUseCase *budget.GetDashboardUseCase
	getTodayUseCase     *budget.GetTodayUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	setBudgetUseCase *budget.SetBudgetUseCase,
	getDashboardUseCase *budget.GetDashboardUseCase,
	getTodayUseCase *budget.GetTodayUseCase,
) *BudgetController {
	return &BudgetController{
		setBudgetUseCase:    setBudgetUseCase,
		getDashboardUseCase: getDashboardUseCase,
		getTodayUseCase:     getTodayUseCase,
	}
}

// SetBudget handles PUT /budgets requests.
func (c *BudgetController) SetBudget(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.setBudgetUseCase.Execute(ctx.Request.Context(), budget.SetBudgetInput{
		UserID:           userID,
		MonthlyAmount:    *req.MonthlyAmount,
		Month:            req.Month,
		Year:             req.Year,
		StartDayOverride: req.StartDay,
		Today:            today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	status := http.StatusOK
	if output.Created {
		status = http.StatusCreated
	}
	ctx.JSON(status, dto.SetBudgetResponse{
		Budget:   *dto.ToBudgetResponse(output.Budget),
		Created:  output.Created,
		DailyLog: dto.ToDailyLogResponse(output.DailyLog),
	})
}

// GetDashboard handles GET /dashboard requests.
func (c *BudgetController) GetDashboard(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var q dto.DashboardQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.getDashboardUseCase.Execute(ctx.Request.Context(), budget.GetDashboardInput{
		UserID:    userID,
		ViewMonth: q.Month,
		ViewYear:  q.Year,
		Today:     today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// GetToday handles GET /today requests.
func (c *BudgetController) GetToday(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	output, err := c.getTodayUseCase.Execute(ctx.Request.Context(), budget.GetTodayInput{
		UserID: userID,
		Today:  today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTodayResponse(output))
}
