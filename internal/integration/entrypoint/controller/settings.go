package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daily-budget/backend/internal/application/usecase/settings"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles user preference endpoints.
type SettingsController struct {
	updateUseCase *settings.UpdateSettingsUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(updateUseCase *settings.UpdateSettingsUseCase) *SettingsController {
	return &SettingsController{updateUseCase: updateUseCase}
}

// Update handles PATCH /users/me/settings requests.
func (c *SettingsController) Update(ctx *gin.Context) {
	userID, today, ok := requestScope(ctx)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidRequest(ctx, string(domainerror.ErrCodeMissingBudgetFields), err)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), settings.UpdateSettingsInput{
		UserID:        userID,
		Name:          req.Name,
		MonthStartDay: req.MonthStartDay,
		Locale:        req.Locale,
		Today:         today,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateSettingsResponse{
		User:     dto.ToUserResponse(output.User),
		DailyLog: dto.ToDailyLogResponse(output.DailyLog),
	})
}
