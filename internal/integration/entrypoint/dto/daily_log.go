package dto

import (
	"github.com/daily-budget/backend/internal/application/usecase/dailylog"
	"github.com/daily-budget/backend/internal/domain/entity"
)

// DailyLogQuery represents the query parameters of GET /daily-logs.
type DailyLogQuery struct {
	Month *int `form:"month"`
	Year  *int `form:"year"`
}

// DailyLogResponse represents one ledger row in API responses.
type DailyLogResponse struct {
	Date        string `json:"date"`
	DailyBudget string `json:"daily_budget"`
	Carryover   string `json:"carryover"`
	TotalSpent  string `json:"total_spent"`
	Remaining   string `json:"remaining"`
}

// DailyLogListResponse represents the response of GET /daily-logs.
type DailyLogListResponse struct {
	Month      int                `json:"month"`
	Year       int                `json:"year"`
	StartDate  string             `json:"start_date"`
	EndDate    string             `json:"end_date"`
	TotalSpent string             `json:"total_spent"`
	DailyLogs  []DailyLogResponse `json:"daily_logs"`
}

// ToDailyLogResponse converts a ledger row, passing nil through.
func ToDailyLogResponse(l *entity.DailyLog) *DailyLogResponse {
	if l == nil {
		return nil
	}
	return &DailyLogResponse{
		Date:        l.Date.String(),
		DailyBudget: l.DailyBudget.String(),
		Carryover:   l.Carryover.String(),
		TotalSpent:  l.TotalSpent.String(),
		Remaining:   l.Remaining.String(),
	}
}

// ToDailyLogListResponse converts the ledger history of a period.
func ToDailyLogListResponse(out *dailylog.ListDailyLogsOutput) DailyLogListResponse {
	logs := make([]DailyLogResponse, 0, len(out.DailyLogs))
	for _, l := range out.DailyLogs {
		logs = append(logs, *ToDailyLogResponse(l))
	}
	return DailyLogListResponse{
		Month:      int(out.Period.Month),
		Year:       out.Period.Year,
		StartDate:  out.Period.StartDate.String(),
		EndDate:    out.Period.EndDate.String(),
		TotalSpent: out.TotalSpent.String(),
		DailyLogs:  logs,
	}
}
