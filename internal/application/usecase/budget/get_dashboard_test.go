package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

func TestGetDashboard_CopiesPreviousBudget(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := f.seedUser(t, nil)
	today := valueobject.MustParseDate("2026-01-10")

	december := entity.NewBudget(user.ID, valueobject.MustAmount("3100"), time.December, 2025, intPtr(15))
	if err := f.store.Budgets().Create(ctx, december); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}
	if err := f.store.FixedExpenses().Create(ctx, entity.NewFixedExpense(user.ID, "Rent", valueobject.MustAmount("620"))); err != nil {
		t.Fatalf("failed to seed fixed expense: %v", err)
	}
	if err := f.store.Incomes().Create(ctx, entity.NewIncome(user.ID, valueobject.MustAmount("310"), nil, time.January, 2026)); err != nil {
		t.Fatalf("failed to seed income: %v", err)
	}

	output, err := f.dashboard.Execute(ctx, GetDashboardInput{UserID: user.ID, Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.BudgetCopied {
		t.Error("expected the December budget to be copied")
	}
	if output.Budget == nil || output.Budget.Month != time.January || output.Budget.Year != 2026 {
		t.Fatalf("expected a January 2026 budget, got %+v", output.Budget)
	}
	if output.Budget.StartDay != nil {
		t.Errorf("expected the start day override to be dropped, got %d", *output.Budget.StartDay)
	}
	if output.Period.StartDate.String() != "2026-01-01" || output.Period.EndDate.String() != "2026-01-31" {
		t.Errorf("unexpected period %s..%s", output.Period.StartDate, output.Period.EndDate)
	}
	// (3100 + 310 - 620) / 31
	if output.DailyBudget.String() != "90.00" {
		t.Errorf("expected daily budget 90.00, got %s", output.DailyBudget)
	}
	if output.AvailableForPeriod.String() != "2790.00" {
		t.Errorf("expected 2790.00 available, got %s", output.AvailableForPeriod)
	}
	if !output.IsCurrentPeriod || output.IsFuturePeriod {
		t.Errorf("expected current, non-future period, got current=%v future=%v", output.IsCurrentPeriod, output.IsFuturePeriod)
	}
	if output.DisplayLabel != "January 2026" {
		t.Errorf("expected display label January 2026, got %q", output.DisplayLabel)
	}

	again, err := f.dashboard.Execute(ctx, GetDashboardInput{UserID: user.ID, Today: today})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.BudgetCopied {
		t.Error("expected the second read to find the copied budget")
	}
	if again.Budget.ID != output.Budget.ID {
		t.Error("expected the same copied budget")
	}
}

func TestGetDashboard_ExplicitLabels(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	user := f.seedUser(t, intPtr(28))
	today := valueobject.MustParseDate("2026-01-15")

	if err := f.store.Budgets().Create(ctx, entity.NewBudget(user.ID, valueobject.MustAmount("900"), time.November, 2025, nil)); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}

	tests := []struct {
		name          string
		month         int
		year          int
		expectBudget  bool
		expectCurrent bool
		expectFuture  bool
		expectLabel   string
	}{
		{name: "past label with budget", month: 11, year: 2025, expectBudget: true, expectLabel: "Nov 28 - Dec 27, 2025"},
		{name: "current label copies the previous budget", month: 12, year: 2025, expectBudget: true, expectCurrent: true, expectLabel: "Dec 28, 2025 - Jan 27, 2026"},
		{name: "future label", month: 1, year: 2026, expectFuture: true, expectLabel: "Jan 28 - Feb 27, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := f.dashboard.Execute(ctx, GetDashboardInput{
				UserID:    user.ID,
				ViewMonth: intPtr(tt.month),
				ViewYear:  intPtr(tt.year),
				Today:     today,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (output.Budget != nil) != tt.expectBudget {
				t.Errorf("expected budget present=%v, got %+v", tt.expectBudget, output.Budget)
			}
			if output.IsCurrentPeriod != tt.expectCurrent {
				t.Errorf("expected current=%v, got %v", tt.expectCurrent, output.IsCurrentPeriod)
			}
			if output.IsFuturePeriod != tt.expectFuture {
				t.Errorf("expected future=%v, got %v", tt.expectFuture, output.IsFuturePeriod)
			}
			if output.DisplayLabel != tt.expectLabel {
				t.Errorf("expected label %q, got %q", tt.expectLabel, output.DisplayLabel)
			}
			if output.Budget == nil && output.DailyBudget.String() != "0.00" {
				t.Errorf("expected zero daily budget without a budget, got %s", output.DailyBudget)
			}
		})
	}
}

func TestGetDashboard_Errors(t *testing.T) {
	f := newFixture()
	user := f.seedUser(t, nil)
	today := valueobject.MustParseDate("2026-01-10")

	tests := []struct {
		name     string
		input    GetDashboardInput
		expected domainerror.BudgetErrorCode
	}{
		{name: "unknown user", input: GetDashboardInput{UserID: uuid.New(), Today: today}, expected: domainerror.ErrCodeBudgetUserNotFound},
		{name: "month without year", input: GetDashboardInput{UserID: user.ID, ViewMonth: intPtr(1), Today: today}, expected: domainerror.ErrCodeMissingBudgetFields},
		{name: "invalid month", input: GetDashboardInput{UserID: user.ID, ViewMonth: intPtr(0), ViewYear: intPtr(2026), Today: today}, expected: domainerror.ErrCodeInvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.dashboard.Execute(context.Background(), tt.input)
			if code := budgetCode(t, err); code != tt.expected {
				t.Errorf("expected code %s, got %s", tt.expected, code)
			}
		})
	}
}
