// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/daily-budget/backend/config"
	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/application/usecase/auth"
	"github.com/daily-budget/backend/internal/application/usecase/budget"
	"github.com/daily-budget/backend/internal/application/usecase/dailylog"
	"github.com/daily-budget/backend/internal/application/usecase/expense"
	"github.com/daily-budget/backend/internal/application/usecase/fixedexpense"
	"github.com/daily-budget/backend/internal/application/usecase/income"
	"github.com/daily-budget/backend/internal/application/usecase/settings"
	"github.com/daily-budget/backend/internal/infra/db"
	"github.com/daily-budget/backend/internal/infra/observability"
	"github.com/daily-budget/backend/internal/infra/server/router"
	"github.com/daily-budget/backend/internal/integration/adapters"
	"github.com/daily-budget/backend/internal/integration/entrypoint/controller"
	"github.com/daily-budget/backend/internal/integration/entrypoint/middleware"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

// Injector holds all application dependencies.
type Injector struct {
	Config       *config.Config
	Database     *db.Database // nil with the memory driver
	Redis        *redis.Client
	Metrics      *observability.Metrics
	Repositories Repositories
	Locker       adapter.UserLocker
	Refresher    *carryover.Refresher
	Reconciler   *carryover.Reconciler
	Router       *router.Router
}

// OpenDatabase connects to the configured database and migrates it. It returns
// nil for the memory driver.
func OpenDatabase(cfg *config.Config) (*db.Database, error) {
	if cfg.Database.Driver == config.DriverMemory {
		slog.Warn("Using in-memory storage, data is lost on restart")
		return nil, nil
	}

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(); err != nil {
		_ = database.Close()
		return nil, err
	}
	return database, nil
}

// OpenRedis connects to Redis. It returns nil when no URL is configured.
func OpenRedis(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		slog.Info("Redis not configured, ledger lock is process local")
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", opts.Addr)
	return client, nil
}

// NewInjector wires every use case, controller and middleware. database and
// redisClient may be nil.
func NewInjector(cfg *config.Config, database *db.Database, redisClient *redis.Client, clock adapter.Clock) (*Injector, error) {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}

	// Create repositories
	var repos Repositories
	var dbHealthChecker func() bool
	if database != nil {
		repos = GormRepositories(database.DB())
		dbHealthChecker = database.HealthCheck
	} else {
		repos = MemoryRepositories(memory.NewStore())
	}

	// Create adapters/services
	var locker adapter.UserLocker
	if redisClient != nil {
		locker = adapters.NewRedisUserLocker(redisClient, cfg.Redis.LockTTL, cfg.Redis.LockBackoff, cfg.Redis.LockRetries)
	} else {
		locker = adapters.NewLocalUserLocker()
	}
	metrics := observability.NewMetrics()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, adapters.TokenDurations{
		Access:  cfg.JWT.AccessTokenExpiry,
		Refresh: cfg.JWT.RefreshTokenExpiry,
	}, repos.Tokens)

	engine := carryover.NewEngine(repos.DailyLogs, metrics)
	refresher := carryover.NewRefresher(repos.Users, repos.Budgets, repos.FixedExpenses, repos.Incomes, engine)
	reconciler := carryover.NewReconciler(repos.Expenses, repos.DailyLogs)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(repos.Users, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(repos.Users, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(repos.Users, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(repos.Users, repos.Budgets, refresher, locker)
	getDashboardUseCase := budget.NewGetDashboardUseCase(repos.Users, repos.Budgets, refresher)
	getTodayUseCase := budget.NewGetTodayUseCase(getDashboardUseCase, refresher, repos.Expenses, locker)

	// Create expense use cases
	addExpenseUseCase := expense.NewAddExpenseUseCase(repos.Expenses, repos.DailyLogs, locker, metrics)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(repos.Expenses, repos.DailyLogs, locker)
	listExpensesUseCase := expense.NewListExpensesUseCase(repos.Expenses, refresher)

	// Create fixed expense and income use cases
	createFixedExpenseUseCase := fixedexpense.NewCreateFixedExpenseUseCase(repos.FixedExpenses, refresher, locker)
	listFixedExpensesUseCase := fixedexpense.NewListFixedExpensesUseCase(repos.FixedExpenses)
	deleteFixedExpenseUseCase := fixedexpense.NewDeleteFixedExpenseUseCase(repos.FixedExpenses, refresher, locker)
	createIncomeUseCase := income.NewCreateIncomeUseCase(repos.Users, repos.Incomes, refresher, locker)
	listIncomesUseCase := income.NewListIncomesUseCase(repos.Users, repos.Incomes)
	deleteIncomeUseCase := income.NewDeleteIncomeUseCase(repos.Incomes, refresher, locker)

	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(repos.Users, refresher, locker)
	listDailyLogsUseCase := dailylog.NewListDailyLogsUseCase(repos.Users, repos.DailyLogs, refresher)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker)
	authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
	periodController := controller.NewPeriodController()
	budgetController := controller.NewBudgetController(setBudgetUseCase, getDashboardUseCase, getTodayUseCase)
	expenseController := controller.NewExpenseController(addExpenseUseCase, deleteExpenseUseCase, listExpensesUseCase)
	fixedExpenseController := controller.NewFixedExpenseController(createFixedExpenseUseCase, listFixedExpensesUseCase, deleteFixedExpenseUseCase)
	incomeController := controller.NewIncomeController(createIncomeUseCase, listIncomesUseCase, deleteIncomeUseCase)
	settingsController := controller.NewSettingsController(updateSettingsUseCase)
	dailyLogController := controller.NewDailyLogController(listDailyLogsUseCase)

	// Create middleware
	// Tests hammer the login endpoint, so limiting is off there
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(0, time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	todayMiddleware := middleware.NewTodayMiddleware(clock, location)

	r := router.NewRouter(
		healthController,
		authController,
		periodController,
		budgetController,
		expenseController,
		fixedExpenseController,
		incomeController,
		settingsController,
		dailyLogController,
		loginRateLimiter,
		authMiddleware,
		todayMiddleware,
		metrics,
	)

	return &Injector{
		Config:       cfg,
		Database:     database,
		Redis:        redisClient,
		Metrics:      metrics,
		Repositories: repos,
		Locker:       locker,
		Refresher:    refresher,
		Reconciler:   reconciler,
		Router:       r,
	}, nil
}

// Close releases the database and Redis connections.
func (i *Injector) Close() {
	if i.Redis != nil {
		if err := i.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
	if i.Database != nil {
		if err := i.Database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
}
