package dto

import (
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/usecase/fixedexpense"
	"github.com/daily-budget/backend/internal/domain/entity"
)

// CreateFixedExpenseRequest represents the request body for POST /fixed-expenses.
type CreateFixedExpenseRequest struct {
	Name   string           `json:"name" binding:"required,max=100"`
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

// FixedExpenseResponse represents a fixed expense in API responses.
type FixedExpenseResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// CreateFixedExpenseResponse represents the response of POST /fixed-expenses.
type CreateFixedExpenseResponse struct {
	FixedExpense FixedExpenseResponse `json:"fixed_expense"`
	DailyLog     *DailyLogResponse    `json:"daily_log"`
}

// FixedExpenseListResponse represents the response of GET /fixed-expenses.
type FixedExpenseListResponse struct {
	Total         string                 `json:"total"`
	FixedExpenses []FixedExpenseResponse `json:"fixed_expenses"`
}

// ToFixedExpenseResponse converts a domain FixedExpense entity to its DTO.
func ToFixedExpenseResponse(f *entity.FixedExpense) FixedExpenseResponse {
	return FixedExpenseResponse{
		ID:     f.ID.String(),
		Name:   f.Name,
		Amount: f.Amount.String(),
	}
}

// ToFixedExpenseListResponse converts the fixed expense list.
func ToFixedExpenseListResponse(out *fixedexpense.ListFixedExpensesOutput) FixedExpenseListResponse {
	items := make([]FixedExpenseResponse, 0, len(out.FixedExpenses))
	for _, f := range out.FixedExpenses {
		items = append(items, ToFixedExpenseResponse(f))
	}
	return FixedExpenseListResponse{
		Total:         out.Total.String(),
		FixedExpenses: items,
	}
}
