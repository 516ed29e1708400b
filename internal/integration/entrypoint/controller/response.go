package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
	"github.com/daily-budget/backend/internal/integration/entrypoint/middleware"
)

// requestScope returns the authenticated user and the request's calendar date.
// It writes the error response itself when either is missing.
func requestScope(ctx *gin.Context) (uuid.UUID, valueobject.Date, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, valueobject.Date{}, false
	}
	today, ok := middleware.GetTodayFromContext(ctx)
	if !ok {
		slog.Error("Request reached a controller without a resolved date", "path", ctx.FullPath())
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return uuid.Nil, valueobject.Date{}, false
	}
	return userID, today, true
}

// pathID parses the :id path parameter.
func pathID(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// invalidRequest reports a request that failed binding.
func invalidRequest(ctx *gin.Context, code string, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request",
		Code:    code,
		Details: err.Error(),
	})
}

// respondError maps a use case error to its HTTP response.
func respondError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	var expenseErr *domainerror.ExpenseError
	var authErr *domainerror.AuthError

	switch {
	case errors.As(err, &budgetErr):
		ctx.JSON(statusForBudgetError(budgetErr.Code), dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
	case errors.As(err, &expenseErr):
		ctx.JSON(statusForExpenseError(expenseErr.Code), dto.ErrorResponse{
			Error: expenseErr.Message,
			Code:  string(expenseErr.Code),
		})
	case errors.As(err, &authErr):
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "user not found",
			Code:  string(domainerror.ErrCodeBudgetUserNotFound),
		})
	default:
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func statusForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidAmount,
		domainerror.ErrCodeInvalidMonth,
		domainerror.ErrCodeInvalidYear,
		domainerror.ErrCodeInvalidStartDay,
		domainerror.ErrCodeInvalidDate,
		domainerror.ErrCodeInvalidLocale,
		domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidTimezone:
		return http.StatusBadRequest
	case domainerror.ErrCodeBudgetNotFound,
		domainerror.ErrCodeBudgetUserNotFound,
		domainerror.ErrCodeFixedExpenseNotFound,
		domainerror.ErrCodeIncomeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeLedgerBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func statusForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeMissingExpenseFields,
		domainerror.ErrCodeInvalidExpenseID:
		return http.StatusBadRequest
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedExpense:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeWeakPassword,
		domainerror.ErrCodeInvalidEmail,
		domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidCredentials,
		domainerror.ErrCodeUserNotFound,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
