package dependency

import (
	"gorm.io/gorm"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/integration/persistence"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

// Repositories bundles one storage implementation of every repository.
type Repositories struct {
	Users         adapter.UserRepository
	Tokens        adapter.RefreshTokenRepository
	Budgets       adapter.BudgetRepository
	FixedExpenses adapter.FixedExpenseRepository
	Incomes       adapter.IncomeRepository
	Expenses      adapter.ExpenseRepository
	DailyLogs     adapter.DailyLogRepository
}

// GormRepositories returns the SQL-backed repositories.
func GormRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:         persistence.NewUserRepository(db),
		Tokens:        persistence.NewTokenRepository(db),
		Budgets:       persistence.NewBudgetRepository(db),
		FixedExpenses: persistence.NewFixedExpenseRepository(db),
		Incomes:       persistence.NewIncomeRepository(db),
		Expenses:      persistence.NewExpenseRepository(db),
		DailyLogs:     persistence.NewDailyLogRepository(db),
	}
}

// MemoryRepositories returns repositories over a single in-memory store.
func MemoryRepositories(store *memory.Store) Repositories {
	return Repositories{
		Users:         store.Users(),
		Tokens:        store.RefreshTokens(),
		Budgets:       store.Budgets(),
		FixedExpenses: store.FixedExpenses(),
		Incomes:       store.Incomes(),
		Expenses:      store.Expenses(),
		DailyLogs:     store.DailyLogs(),
	}
}
