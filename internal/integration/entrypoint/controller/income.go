package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/usecase/income"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createUseCase *income.CreateIncomeUseCase
	listUseCase   *income.ListIncomesUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *income.CreateIncomeUseCase,
	listUseCase *income.ListIncomesUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var q dto.IncomeQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{
		UserID: userID,
		Month:  q.Month,
		Year:   q.Year,
		Today:  today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(output))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), income.CreateIncomeInput{
		UserID:      userID,
		Amount:      *req.Amount,
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
		Today:       today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateIncomeResponse{
		Income:   dto.ToIncomeResponse(output.Income),
		DailyLog: dto.ToDailyLogResponse(output.DailyLog),
	})
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, string(domainerror.ErrCodeMissingBudgetFields))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		UserID:   userID,
		IncomeID: id,
		Today:    today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"daily_log": dto.ToDailyLogResponse(output.DailyLog)})
}
