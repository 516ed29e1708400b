package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/domain/entity"
)

// AddExpenseRequest represents the request body for POST /expenses.
type AddExpenseRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description *string          `json:"description,omitempty"`
	Category    string           `json:"category" binding:"required"`
	Date        *string          `json:"date,omitempty" binding:"omitempty,isodate"`
}

// ListExpensesQuery represents the query parameters of GET /expenses.
type ListExpensesQuery struct {
	Date  *string `form:"date" binding:"omitempty,isodate"`
	Month *int    `form:"month"`
	Year  *int    `form:"year"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Amount      string    `json:"amount"`
	Description *string   `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// ExpenseLedgerResponse pairs an expense with the ledger row it changed.
type ExpenseLedgerResponse struct {
	Expense  ExpenseResponse   `json:"expense"`
	DailyLog *DailyLogResponse `json:"daily_log"`
}

// ExpenseListResponse represents the response of GET /expenses.
type ExpenseListResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Total     string            `json:"total"`
	Expenses  []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount.String(),
		Description: e.Description,
		Category:    string(e.Category),
		Date:        e.Date.String(),
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of expenses, never returning nil.
func ToExpenseResponses(expenses []*entity.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, ToExpenseResponse(e))
	}
	return out
}
