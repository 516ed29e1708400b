package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/adapters"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

func TestIncomes_RefreshTodaysAllowance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	locker := adapters.NewLocalUserLocker()
	refresher := carryover.NewRefresher(store.Users(), store.Budgets(), store.FixedExpenses(), store.Incomes(), carryover.NewEngine(store.DailyLogs(), nil))
	create := NewCreateIncomeUseCase(store.Users(), store.Incomes(), refresher, locker)
	list := NewListIncomesUseCase(store.Users(), store.Incomes())
	del := NewDeleteIncomeUseCase(store.Incomes(), refresher, locker)

	startDay := 28
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	user.MonthStartDay = &startDay
	if err := store.Users().Create(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	// 2026-01-15 is in the December 2025 label: 2025-12-28..2026-01-27, 31 days.
	if err := store.Budgets().Create(ctx, entity.NewBudget(user.ID, valueobject.MustAmount("3100"), time.December, 2025, nil)); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	today := valueobject.MustParseDate("2026-01-15")

	created, err := create.Execute(ctx, CreateIncomeInput{
		UserID: user.ID,
		Amount: decimal.RequireFromString("620"),
		Today:  today,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Income.Month != time.December || created.Income.Year != 2025 {
		t.Errorf("expected the income on the current label December 2025, got %d/%d", created.Income.Month, created.Income.Year)
	}
	if created.DailyLog == nil || created.DailyLog.DailyBudget.String() != "120.00" {
		t.Fatalf("expected daily budget 120.00, got %+v", created.DailyLog)
	}

	month, year := 1, 2026
	future, err := create.Execute(ctx, CreateIncomeInput{
		UserID: user.ID,
		Amount: decimal.RequireFromString("1000"),
		Month:  &month,
		Year:   &year,
		Today:  today,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if future.DailyLog.DailyBudget.String() != "120.00" {
		t.Errorf("expected another label's income to leave today alone, got %s", future.DailyLog.DailyBudget)
	}

	listed, err := list.Execute(ctx, ListIncomesInput{UserID: user.ID, Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if listed.Month != 12 || listed.Year != 2025 || len(listed.Incomes) != 1 || listed.Total.String() != "620.00" {
		t.Errorf("unexpected listing %+v", listed)
	}

	_, err = del.Execute(ctx, DeleteIncomeInput{UserID: uuid.New(), IncomeID: created.Income.ID, Today: today})
	if !errors.Is(err, domainerror.ErrIncomeNotFound) {
		t.Errorf("expected another user's income to be reported missing, got %v", err)
	}

	deleted, err := del.Execute(ctx, DeleteIncomeInput{UserID: user.ID, IncomeID: created.Income.ID, Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted.DailyLog.DailyBudget.String() != "100.00" {
		t.Errorf("expected daily budget back at 100.00, got %s", deleted.DailyLog.DailyBudget)
	}
}

func TestCreateIncome_Validation(t *testing.T) {
	store := memory.NewStore()
	refresher := carryover.NewRefresher(store.Users(), store.Budgets(), store.FixedExpenses(), store.Incomes(), carryover.NewEngine(store.DailyLogs(), nil))
	create := NewCreateIncomeUseCase(store.Users(), store.Incomes(), refresher, adapters.NewLocalUserLocker())
	month, badMonth, year := 3, 13, 2026

	tests := []struct {
		name     string
		input    CreateIncomeInput
		expected domainerror.BudgetErrorCode
	}{
		{name: "zero amount", input: CreateIncomeInput{Amount: decimal.Zero}, expected: domainerror.ErrCodeInvalidAmount},
		{name: "month without year", input: CreateIncomeInput{Amount: decimal.NewFromInt(1), Month: &month}, expected: domainerror.ErrCodeMissingBudgetFields},
		{name: "invalid month", input: CreateIncomeInput{Amount: decimal.NewFromInt(1), Month: &badMonth, Year: &year}, expected: domainerror.ErrCodeInvalidMonth},
		{name: "unknown user", input: CreateIncomeInput{UserID: uuid.New(), Amount: decimal.NewFromInt(1)}, expected: domainerror.ErrCodeBudgetUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := create.Execute(context.Background(), tt.input)
			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Fatalf("expected a BudgetError, got %v", err)
			}
			if budgetErr.Code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, budgetErr.Code)
			}
		})
	}
}
