package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Each connection to :memory: is its own database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	user := entity.NewUser("ana@example.com", "Ana", "hash")
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedUser(t, db)

	if err := repo.Create(ctx, entity.NewUser("ana@example.com", "Other", "hash")); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}

	startDay := 15
	user.MonthStartDay = &startDay
	user.Locale = "pt-BR"
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.StartDay() != 15 || found.Locale != "pt-BR" {
		t.Errorf("expected updated preferences, got start day %d locale %q", found.StartDay(), found.Locale)
	}

	if _, err := repo.FindByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
	exists, err := repo.ExistsByEmail(ctx, "nobody@example.com")
	if err != nil || exists {
		t.Errorf("expected no user, got exists=%v err=%v", exists, err)
	}
}

func TestBudgetRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewBudgetRepository(db)
	user := seedUser(t, db)

	override := 20
	budget := entity.NewBudget(user.ID, valueobject.MustAmount("1234.56"), time.March, 2026, &override)
	if err := repo.Create(ctx, budget); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	duplicate := entity.NewBudget(user.ID, valueobject.MustAmount("1"), time.March, 2026, nil)
	if err := repo.Create(ctx, duplicate); !errors.Is(err, domainerror.ErrBudgetAlreadyExists) {
		t.Errorf("expected ErrBudgetAlreadyExists, got %v", err)
	}

	budget.MonthlyAmount = valueobject.MustAmount("2000")
	budget.StartDay = nil
	if err := repo.Update(ctx, budget); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByLabel(ctx, user.ID, time.March, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.MonthlyAmount.String() != "2000.00" || found.StartDay != nil {
		t.Errorf("expected updated budget, got %s with start day %v", found.MonthlyAmount, found.StartDay)
	}

	if _, err := repo.FindByLabel(ctx, user.ID, time.April, 2026); !errors.Is(err, domainerror.ErrBudgetNotFound) {
		t.Errorf("expected ErrBudgetNotFound, got %v", err)
	}
}

func TestDailyLogRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewDailyLogRepository(db)
	user := seedUser(t, db)

	for _, day := range []string{"2026-01-11", "2026-01-09", "2026-01-10"} {
		log := entity.NewDailyLog(user.ID, valueobject.MustParseDate(day), valueobject.MustAmount("50"), valueobject.MustSigned("-12.34"))
		if err := repo.Create(ctx, log); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	again := entity.NewDailyLog(user.ID, valueobject.MustParseDate("2026-01-10"), valueobject.MustAmount("1"), valueobject.ZeroSigned)
	if err := repo.Create(ctx, again); !errors.Is(err, domainerror.ErrDailyLogAlreadyExists) {
		t.Errorf("expected ErrDailyLogAlreadyExists, got %v", err)
	}

	log, err := repo.FindByDate(ctx, user.ID, valueobject.MustParseDate("2026-01-10"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if log.Carryover.String() != "-12.34" || log.Remaining.String() != "37.66" {
		t.Errorf("unexpected amounts carryover %s remaining %s", log.Carryover, log.Remaining)
	}

	log.AddSpent(valueobject.MustAmount("40.10"))
	if err := repo.Update(ctx, log); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logs, err := repo.FindByDateRange(ctx, user.ID, valueobject.MustParseDate("2026-01-10"), valueobject.MustParseDate("2026-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 2 || logs[0].Date.String() != "2026-01-10" || logs[1].Date.String() != "2026-01-11" {
		t.Fatalf("expected 2026-01-10 and 2026-01-11 in order, got %d rows", len(logs))
	}
	if logs[0].TotalSpent.String() != "40.10" || logs[0].Remaining.String() != "-2.44" {
		t.Errorf("expected the update to persist, got spent %s remaining %s", logs[0].TotalSpent, logs[0].Remaining)
	}

	if _, err := repo.FindByDate(ctx, uuid.New(), valueobject.MustParseDate("2026-01-10")); !errors.Is(err, domainerror.ErrDailyLogNotFound) {
		t.Errorf("expected ErrDailyLogNotFound, got %v", err)
	}
}

func TestExpenseRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewExpenseRepository(db)
	user := seedUser(t, db)

	description := "coffee"
	first := entity.NewExpense(user.ID, valueobject.MustAmount("3.20"), &description, entity.ExpenseCategoryFood, valueobject.MustParseDate("2026-01-31"))
	second := entity.NewExpense(user.ID, valueobject.MustAmount("9.99"), nil, entity.ExpenseCategoryOther, valueobject.MustParseDate("2026-02-01"))
	for _, e := range []*entity.Expense{first, second} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	found, err := repo.FindByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Amount.String() != "3.20" || *found.Description != "coffee" || found.Category != entity.ExpenseCategoryFood {
		t.Errorf("unexpected expense %+v", found)
	}

	january, err := repo.FindByDateRange(ctx, user.ID, valueobject.MustParseDate("2026-01-01"), valueobject.MustParseDate("2026-01-31"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(january) != 1 || january[0].ID != first.ID {
		t.Errorf("expected only the January expense, got %d", len(january))
	}

	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); !errors.Is(err, domainerror.ErrExpenseNotFound) {
		t.Errorf("expected ErrExpenseNotFound on second delete, got %v", err)
	}
}

func TestFixedExpenseAndIncomeRepositories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	user := seedUser(t, db)
	fixedRepo := NewFixedExpenseRepository(db)
	incomeRepo := NewIncomeRepository(db)

	rent := entity.NewFixedExpense(user.ID, "Rent", valueobject.MustAmount("800"))
	if err := fixedRepo.Create(ctx, rent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, err := fixedRepo.FindByUser(ctx, user.ID)
	if err != nil || len(items) != 1 || entity.TotalFixedExpenses(items).String() != "800.00" {
		t.Errorf("unexpected fixed expenses %v, err %v", items, err)
	}
	if err := fixedRepo.Delete(ctx, rent.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := fixedRepo.FindByID(ctx, rent.ID); !errors.Is(err, domainerror.ErrFixedExpenseNotFound) {
		t.Errorf("expected ErrFixedExpenseNotFound, got %v", err)
	}

	for _, label := range []struct {
		month  time.Month
		amount string
	}{{time.May, "100"}, {time.May, "50.50"}, {time.June, "70"}} {
		if err := incomeRepo.Create(ctx, entity.NewIncome(user.ID, valueobject.MustAmount(label.amount), nil, label.month, 2026)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	may, err := incomeRepo.FindByLabel(ctx, user.ID, time.May, 2026)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(may) != 2 || entity.TotalIncomes(may).String() != "150.50" {
		t.Errorf("expected two May incomes totalling 150.50, got %d", len(may))
	}
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	userID := uuid.New()

	if err := repo.SaveRefreshToken(ctx, "live", userID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.SaveRefreshToken(ctx, "expired", userID, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		token    string
		expected bool
	}{
		{"live", true},
		{"expired", false},
		{"unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			valid, err := repo.IsRefreshTokenValid(ctx, tt.token)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if valid != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, valid)
			}
		})
	}

	if err := repo.InvalidateRefreshToken(ctx, "live"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "live"); valid {
		t.Error("expected the invalidated token to be rejected")
	}
}
