package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/usecase/expense"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	addUseCase    *expense.AddExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	addUseCase *expense.AddExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var q dto.ListExpensesQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeInvalidExpenseDate), err)
		return
	}
	date, err := dto.OptionalDate(q.Date)
	if err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeInvalidExpenseDate), err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), expense.ListExpensesInput{
		UserID: userID,
		Date:   date,
		Month:  q.Month,
		Year:   q.Year,
		Today:  today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		StartDate: output.StartDate.String(),
		EndDate:   output.EndDate.String(),
		Total:     output.Total.String(),
		Expenses:  dto.ToExpenseResponses(output.Expenses),
	})
}

// Add handles POST /expenses requests.
func (c *ExpenseController) Add(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var req dto.AddExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingExpenseFields), err)
		return
	}
	date, err := dto.OptionalDate(req.Date)
	if err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeInvalidExpenseDate), err)
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), expense.AddExpenseInput{
		UserID:      userID,
		Amount:      *req.Amount,
		Description: req.Description,
		Category:    entity.ExpenseCategory(req.Category),
		Date:        date,
		Today:       today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ExpenseLedgerResponse{
		Expense:  dto.ToExpenseResponse(output.Expense),
		DailyLog: dto.ToDailyLogResponse(output.DailyLog),
	})
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	userID, _, ok := requestScope(ctx)
	if !ok {
		return
	}
	expenseID, ok := pathID(ctx, string(domainerror.ErrCodeInvalidExpenseID))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{
		UserID:    userID,
		ExpenseID: expenseID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ExpenseLedgerResponse{
		Expense:  dto.ToExpenseResponse(output.Expense),
		DailyLog: dto.ToDailyLogResponse(output.DailyLog),
	})
}
