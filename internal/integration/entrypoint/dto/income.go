package dto

import (
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/usecase/income"
	"github.com/daily-budget/backend/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for POST /incomes.
// Month and year default to the current period.
type CreateIncomeRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description *string          `json:"description,omitempty"`
	Month       *int             `json:"month,omitempty"`
	Year        *int             `json:"year,omitempty"`
}

// IncomeQuery represents the query parameters of GET /incomes.
type IncomeQuery struct {
	Month *int `form:"month"`
	Year  *int `form:"year"`
}

// IncomeResponse represents an income in API responses.
type IncomeResponse struct {
	ID          string  `json:"id"`
	Amount      string  `json:"amount"`
	Description *string `json:"description"`
	Month       int     `json:"month"`
	Year        int     `json:"year"`
}

// CreateIncomeResponse represents the response of POST /incomes.
type CreateIncomeResponse struct {
	Income   IncomeResponse    `json:"income"`
	DailyLog *DailyLogResponse `json:"daily_log"`
}

// IncomeListResponse represents the response of GET /incomes.
type IncomeListResponse struct {
	Month   int              `json:"month"`
	Year    int              `json:"year"`
	Total   string           `json:"total"`
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to its DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID.String(),
		Amount:      i.Amount.String(),
		Description: i.Description,
		Month:       int(i.Month),
		Year:        i.Year,
	}
}

// ToIncomeListResponse converts the incomes of a label.
func ToIncomeListResponse(out *income.ListIncomesOutput) IncomeListResponse {
	items := make([]IncomeResponse, 0, len(out.Incomes))
	for _, i := range out.Incomes {
		items = append(items, ToIncomeResponse(i))
	}
	return IncomeListResponse{
		Month:   out.Month,
		Year:    out.Year,
		Total:   out.Total.String(),
		Incomes: items,
	}
}
