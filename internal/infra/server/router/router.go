// Package router sets up the HTTP routing for the application.
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/daily-budget/backend/internal/infra/observability"
	"github.com/daily-budget/backend/internal/integration/entrypoint/controller"
	"github.com/daily-budget/backend/internal/integration/entrypoint/dto"
	"github.com/daily-budget/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	periodController       *controller.PeriodController
	budgetController       *controller.BudgetController
	expenseController      *controller.ExpenseController
	fixedExpenseController *controller.FixedExpenseController
	incomeController       *controller.IncomeController
	settingsController     *controller.SettingsController
	dailyLogController     *controller.DailyLogController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
	todayMiddleware        *middleware.TodayMiddleware
	metrics                *observability.Metrics
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	periodController *controller.PeriodController,
	budgetController *controller.BudgetController,
	expenseController *controller.ExpenseController,
	fixedExpenseController *controller.FixedExpenseController,
	incomeController *controller.IncomeController,
	settingsController *controller.SettingsController,
	dailyLogController *controller.DailyLogController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	todayMiddleware *middleware.TodayMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		periodController:       periodController,
		budgetController:       budgetController,
		expenseController:      expenseController,
		fixedExpenseController: fixedExpenseController,
		incomeController:       incomeController,
		settingsController:     settingsController,
		dailyLogController:     dailyLogController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
		todayMiddleware:        todayMiddleware,
		metrics:                metrics,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		slog.Error("Failed to register request validators", "error", err)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}
	if r.metrics != nil {
		r.engine.Use(r.metrics.Middleware())
	}

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	if r.metrics != nil {
		r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.metrics.Registry, promhttp.HandlerOpts{})))
	}
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.authController.Register)
		auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
		auth.POST("/refresh", r.authController.RefreshToken)
		auth.POST("/logout", r.authController.Logout)
	}

	// Everything below is per user and needs the caller's calendar date.
	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate(), r.todayMiddleware.Resolve())

	periods := protected.Group("/periods")
	{
		periods.GET("", r.periodController.Compute)
		periods.GET("/for-date", r.periodController.ForDate)
	}

	protected.GET("/dashboard", r.budgetController.GetDashboard)
	protected.GET("/today", r.budgetController.GetToday)
	protected.PUT("/budgets", r.budgetController.SetBudget)

	expenses := protected.Group("/expenses")
	{
		expenses.GET("", r.expenseController.List)
		expenses.POST("", r.expenseController.Add)
		expenses.DELETE("/:id", r.expenseController.Delete)
	}

	fixedExpenses := protected.Group("/fixed-expenses")
	{
		fixedExpenses.GET("", r.fixedExpenseController.List)
		fixedExpenses.POST("", r.fixedExpenseController.Create)
		fixedExpenses.DELETE("/:id", r.fixedExpenseController.Delete)
	}

	incomes := protected.Group("/incomes")
	{
		incomes.GET("", r.incomeController.List)
		incomes.POST("", r.incomeController.Create)
		incomes.DELETE("/:id", r.incomeController.Delete)
	}

	protected.PATCH("/users/me/settings", r.settingsController.Update)
	protected.GET("/daily-logs", r.dailyLogController.List)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
