package carryover

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

func newRefresher(store *memory.Store) *Refresher {
	return NewRefresher(
		store.Users(),
		store.Budgets(),
		store.FixedExpenses(),
		store.Incomes(),
		NewEngine(store.DailyLogs(), nil),
	)
}

func seedUser(t *testing.T, store *memory.Store, startDay *int) *entity.User {
	t.Helper()
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	user.MonthStartDay = startDay
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestRefresher_Refresh(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	startDay := 28
	user := seedUser(t, store, &startDay)

	// 2026-01-15 belongs to the December 2025 label when periods start on the 28th.
	budget := entity.NewBudget(user.ID, valueobject.MustAmount("1000"), time.December, 2025, nil)
	if err := store.Budgets().Create(ctx, budget); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	if err := store.FixedExpenses().Create(ctx, entity.NewFixedExpense(user.ID, "Rent", valueobject.MustAmount("300"))); err != nil {
		t.Fatalf("failed to seed fixed expense: %v", err)
	}
	if err := store.Incomes().Create(ctx, entity.NewIncome(user.ID, valueobject.MustAmount("500"), nil, time.December, 2025)); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}
	if err := store.Incomes().Create(ctx, entity.NewIncome(user.ID, valueobject.MustAmount("999"), nil, time.January, 2026)); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}

	log, err := newRefresher(store).Refresh(ctx, user.ID, valueobject.MustParseDate("2026-01-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log == nil {
		t.Fatal("expected a daily log")
	}
	// Period 2025-12-28..2026-01-27 has 31 days: 1200 / 31.
	if log.DailyBudget.String() != "38.71" {
		t.Errorf("expected daily budget 38.71, got %s", log.DailyBudget)
	}
}

func TestRefresher_NoBudget(t *testing.T) {
	store := memory.NewStore()
	user := seedUser(t, store, nil)

	log, err := newRefresher(store).Refresh(context.Background(), user.ID, valueobject.MustParseDate("2026-01-15"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log != nil {
		t.Errorf("expected no log without a budget, got %+v", log)
	}
	if _, err := store.DailyLogs().FindByDate(context.Background(), user.ID, valueobject.MustParseDate("2026-01-15")); !errors.Is(err, domainerror.ErrDailyLogNotFound) {
		t.Errorf("expected nothing to be written, got %v", err)
	}
}

func TestRefresher_UserNotFound(t *testing.T) {
	_, err := newRefresher(memory.NewStore()).Refresh(context.Background(), uuid.New(), valueobject.MustParseDate("2026-01-15"))
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRefresher_RefreshBudgetOutsidePeriod(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, nil)
	override := 20
	budget := entity.NewBudget(user.ID, valueobject.MustAmount("900"), time.March, 2026, &override)

	log, err := newRefresher(store).RefreshBudget(ctx, user, budget, valueobject.MustParseDate("2026-03-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log != nil {
		t.Errorf("2026-03-10 is before the March period starting on the 20th, got %+v", log)
	}
}
