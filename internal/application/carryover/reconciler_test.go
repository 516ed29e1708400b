package carryover

import (
	"context"
	"testing"
	"time"

	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

func TestReconciler_Reconcile(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := seedUser(t, store, nil)
	today := valueobject.MustParseDate("2026-01-15")

	budget := entity.NewBudget(user.ID, valueobject.MustAmount("3100"), time.January, 2026, nil)
	if err := store.Budgets().Create(ctx, budget); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	refresher := newRefresher(store)
	if _, err := refresher.Refresh(ctx, user.ID, today); err != nil {
		t.Fatalf("failed to initialize ledger: %v", err)
	}

	// Expense stored without the matching ledger update.
	missed := entity.NewExpense(user.ID, valueobject.MustAmount("40"), nil, entity.ExpenseCategoryFood, today)
	if err := store.Expenses().Create(ctx, missed); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}
	other := entity.NewExpense(user.ID, valueobject.MustAmount("5"), nil, entity.ExpenseCategoryFood, today.Yesterday())
	if err := store.Expenses().Create(ctx, other); err != nil {
		t.Fatalf("failed to seed expense: %v", err)
	}

	log, err := refresher.Refresh(ctx, user.ID, today)
	if err != nil {
		t.Fatalf("unexpected refresh error: %v", err)
	}
	if log.TotalSpent.String() != "0.00" {
		t.Fatalf("refresh should leave spending untouched, got %s", log.TotalSpent)
	}

	reconciler := NewReconciler(store.Expenses(), store.DailyLogs())
	log, err = reconciler.Reconcile(ctx, user.ID, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.TotalSpent.String() != "40.00" {
		t.Errorf("expected total spent 40.00, got %s", log.TotalSpent)
	}
	if log.Remaining.String() != "60.00" {
		t.Errorf("expected remaining 60.00, got %s", log.Remaining)
	}

	stored, err := store.DailyLogs().FindByDate(ctx, user.ID, today)
	if err != nil {
		t.Fatalf("failed to reload daily log: %v", err)
	}
	if stored.TotalSpent.String() != "40.00" || stored.Remaining.String() != "60.00" {
		t.Errorf("expected the reconciled row to be stored, got spent %s remaining %s", stored.TotalSpent, stored.Remaining)
	}

	t.Run("idempotent", func(t *testing.T) {
		again, err := reconciler.Reconcile(ctx, user.ID, today)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.TotalSpent.String() != "40.00" {
			t.Errorf("expected total spent 40.00, got %s", again.TotalSpent)
		}
	})

	t.Run("no ledger row", func(t *testing.T) {
		log, err := reconciler.Reconcile(ctx, user.ID, today.Yesterday())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if log != nil {
			t.Errorf("expected no log for an uninitialized day, got %+v", log)
		}
	})
}
