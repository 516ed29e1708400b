package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/usecase/fixedexpense"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// FixedExpenseController handles fixed expense endpoints.
type FixedExpenseController struct {
	createUseCase *fixedexpense.CreateFixedExpenseUseCase
	listUseCase   *fixedexpense.ListFixedExpensesUseCase
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase
}

// NewFixedExpenseController creates a new fixed expense controller instance.
func NewFixedExpenseController(
	createUseCase *fixedexpense.CreateFixedExpenseUseCase,
	listUseCase *fixedexpense.ListFixedExpensesUseCase,
	deleteUseCase *fixedexpense.DeleteFixedExpenseUseCase,
) *FixedExpenseController {
	return &FixedExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /fixed-expenses requests.
func (c *FixedExpenseController) List(ctx *gin.Context) {
	userID, _, ok := requestScope(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), fixedexpense.ListFixedExpensesInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedExpenseListResponse(output))
}

// Create handles POST /fixed-expenses requests.
func (c *FixedExpenseController) Create(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var req dto.CreateFixedExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedexpense.CreateFixedExpenseInput{
		UserID: userID,
		Name:   req.Name,
		Amount: *req.Amount,
		Today:  today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateFixedExpenseResponse{
		FixedExpense: dto.ToFixedExpenseResponse(output.FixedExpense),
		DailyLog:     dto.ToDailyLogResponse(output.DailyLog),
	})
}

// Delete handles DELETE /fixed-expenses/:id requests.
func (c *FixedExpenseController) Delete(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}
	id, ok := pathID(ctx, string(domainerror.ErrCodeMissingBudgetFields))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedexpense.DeleteFixedExpenseInput{
		UserID:         userID,
		FixedExpenseID: id,
		Today:          today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"daily_log": dto.ToDailyLogResponse(output.DailyLog)})
}
