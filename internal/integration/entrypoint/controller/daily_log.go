package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/usecase/dailylog"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// DailyLogController handles the ledger history endpoint.
type DailyLogController struct {
	listUseCase *dailylog.ListDailyLogsUseCase
}

// NewDailyLogController creates a new daily log controller instance.
func NewDailyLogController(listUseCase *dailylog.ListDailyLogsUseCase) *DailyLogController {
	return &DailyLogController{listUseCase: listUseCase}
}

// List handles GET /daily-logs requests.
func (c *DailyLogController) List(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var q dto.DailyLogQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), dailylog.ListDailyLogsInput{
		UserID: userID,
		Month:  q.Month,
		Year:   q.Year,
		Today:  today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyLogListResponse(output))
}
