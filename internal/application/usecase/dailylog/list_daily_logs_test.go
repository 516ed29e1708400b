package dailylog

import (
	"context"
	"testing"
	"time"

	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

func TestListDailyLogs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	engine := carryover.NewEngine(store.DailyLogs(), nil)
	refresher := carryover.NewRefresher(store.Users(), store.Budgets(), store.FixedExpenses(), store.Incomes(), engine)
	list := NewListDailyLogsUseCase(store.Users(), store.DailyLogs(), refresher)

	user := entity.NewUser("ana@example.com", "Ana", "hash")
	if err := store.Users().Create(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := store.Budgets().Create(ctx, entity.NewBudget(user.ID, valueobject.MustAmount("3100"), time.January, 2026, nil)); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}

	for _, day := range []string{"2026-01-29", "2026-01-30", "2026-01-31"} {
		log, err := refresher.Refresh(ctx, user.ID, valueobject.MustParseDate(day))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		log.AddSpent(valueobject.MustAmount("40"))
		if err := store.DailyLogs().Update(ctx, log); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	output, err := list.Execute(ctx, ListDailyLogsInput{UserID: user.ID, Today: valueobject.MustParseDate("2026-01-31")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.DailyLogs) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(output.DailyLogs))
	}
	if output.TotalSpent.String() != "120.00" {
		t.Errorf("expected 120.00 spent, got %s", output.TotalSpent)
	}

	expectedCarryover := []string{"0.00", "60.00", "120.00"}
	for i, log := range output.DailyLogs {
		if log.Carryover.String() != expectedCarryover[i] {
			t.Errorf("%s: expected carryover %s, got %s", log.Date, expectedCarryover[i], log.Carryover)
		}
	}

	month, year := 2, 2026
	feb, err := list.Execute(ctx, ListDailyLogsInput{UserID: user.ID, Month: &month, Year: &year, Today: valueobject.MustParseDate("2026-01-31")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(feb.DailyLogs) != 0 || feb.Period.DaysInPeriod != 28 {
		t.Errorf("expected an empty 28-day February, got %d rows over %d days", len(feb.DailyLogs), feb.Period.DaysInPeriod)
	}
}
