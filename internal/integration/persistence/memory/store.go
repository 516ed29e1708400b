// Package memory provides in-process implementations of the repository
// interfaces. It backs DATABASE_DRIVER=memory and the application tests.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
)

// Store holds every table behind a single mutex. Entities are copied on the
// way in and out so callers never share pointers with the store.
type Store struct {
	mu sync.RWMutex

	users         map[uuid.UUID]entity.User
	budgets       map[uuid.UUID]entity.Budget
	fixedExpenses map[uuid.UUID]entity.FixedExpense
	incomes       map[uuid.UUID]entity.Income
	expenses      map[uuid.UUID]entity.Expense
	dailyLogs     map[uuid.UUID]entity.DailyLog
	refreshTokens map[string]refreshToken
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[uuid.UUID]entity.User),
		budgets:       make(map[uuid.UUID]entity.Budget),
		fixedExpenses: make(map[uuid.UUID]entity.FixedExpense),
		incomes:       make(map[uuid.UUID]entity.Income),
		expenses:      make(map[uuid.UUID]entity.Expense),
		dailyLogs:     make(map[uuid.UUID]entity.DailyLog),
		refreshTokens: make(map[string]refreshToken),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() adapter.UserRepository { return &userRepository{s} }

// Budgets returns the budget repository view of the store.
func (s *Store) Budgets() adapter.BudgetRepository { return &budgetRepository{s} }

// FixedExpenses returns the fixed expense repository view of the store.
func (s *Store) FixedExpenses() adapter.FixedExpenseRepository { return &fixedExpenseRepository{s} }

// Incomes returns the income repository view of the store.
func (s *Store) Incomes() adapter.IncomeRepository { return &incomeRepository{s} }

// Expenses returns the expense repository view of the store.
func (s *Store) Expenses() adapter.ExpenseRepository { return &expenseRepository{s} }

// DailyLogs returns the ledger repository view of the store.
func (s *Store) DailyLogs() adapter.DailyLogRepository { return &dailyLogRepository{s} }

// RefreshTokens returns the refresh token repository view of the store.
func (s *Store) RefreshTokens() adapter.RefreshTokenRepository { return &refreshTokenRepository{s} }
