package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/adapters"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

func newUseCase(store *memory.Store) *UpdateSettingsUseCase {
	refresher := carryover.NewRefresher(store.Users(), store.Budgets(), store.FixedExpenses(), store.Incomes(), carryover.NewEngine(store.DailyLogs(), nil))
	return NewUpdateSettingsUseCase(store.Users(), refresher, adapters.NewLocalUserLocker())
}

func TestUpdateSettings_StartDayMovesTheLedger(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	if err := store.Users().Create(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	if err := store.Budgets().Create(ctx, entity.NewBudget(user.ID, valueobject.MustAmount("3100"), time.December, 2025, nil)); err != nil {
		t.Fatalf("failed to seed budget: %v", err)
	}

	startDay := 28
	name := "  Ana Maria "
	locale := "pt-br"
	output, err := newUseCase(store).Execute(ctx, UpdateSettingsInput{
		UserID:        user.ID,
		Name:          &name,
		MonthStartDay: &startDay,
		Locale:        &locale,
		Today:         valueobject.MustParseDate("2026-01-15"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.User.StartDay() != 28 || output.User.Name != "Ana Maria" || output.User.Locale != "pt-BR" {
		t.Errorf("unexpected user %+v", output.User)
	}
	// With periods starting on the 28th today belongs to December 2025.
	if output.DailyLog == nil || output.DailyLog.DailyBudget.String() != "100.00" {
		t.Fatalf("expected a December ledger row with 100.00, got %+v", output.DailyLog)
	}

	stored, err := store.Users().FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.StartDay() != 28 {
		t.Errorf("expected the start day to be persisted, got %d", stored.StartDay())
	}
}

func TestUpdateSettings_Errors(t *testing.T) {
	store := memory.NewStore()
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	if err := store.Users().Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	today := valueobject.MustParseDate("2026-01-15")
	badDay := 29
	badLocale := "not a locale!"

	tests := []struct {
		name     string
		input    UpdateSettingsInput
		expected error
	}{
		{name: "start day out of range", input: UpdateSettingsInput{UserID: user.ID, MonthStartDay: &badDay, Today: today}, expected: domainerror.ErrInvalidStartDay},
		{name: "invalid locale", input: UpdateSettingsInput{UserID: user.ID, Locale: &badLocale, Today: today}, expected: domainerror.ErrInvalidLocale},
		{name: "unknown user", input: UpdateSettingsInput{UserID: uuid.New(), Today: today}, expected: domainerror.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(store).Execute(context.Background(), tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}
