package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daily-budget/backend/config"
	"github.com/daily-budget/backend/internal/domain/entity"
	"github.com/daily-budget/backend/internal/domain/valueobject"
	"github.com/daily-budget/backend/internal/infra/dependency"
	"github.com/daily-budget/backend/internal/integration/adapters"
)

var (
	flagUser        string
	flagRefreshDate string
)

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Refresh and reconcile a user's daily log",
	Long: "Recomputes the user's daily log for --date (default: today in APP_TIMEZONE)\n" +
		"from the stored budget, incomes and fixed expenses, then recounts the day's\n" +
		"spending from its stored expenses. Use it to repair a ledger after a failed write.",
	RunE: runRefresh,
}

func init() {
	refreshCmd.Flags().StringVar(&flagUser, "user", "", "User ID")
	refreshCmd.Flags().StringVar(&flagRefreshDate, "date", "", "Date (YYYY-MM-DD)")
	_ = refreshCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(flagUser)
	if err != nil {
		return fmt.Errorf("invalid user id: %w", err)
	}

	cfg := config.Load()
	if cfg.Database.Driver == config.DriverMemory {
		return errors.New("refresh needs a persistent database, DATABASE_DRIVER is memory")
	}

	date, err := refreshDate(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	database, err := dependency.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	redisClient, err := dependency.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		_ = database.Close()
		return err
	}
	injector, err := dependency.NewInjector(cfg, database, redisClient, adapters.NewSystemClock())
	if err != nil {
		_ = database.Close()
		return err
	}
	defer injector.Close()

	log, err := reconcileLedger(ctx, injector, userID, date)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if log == nil {
		fmt.Fprintf(out, "  No budget for the period containing %s, nothing to refresh.\n", date)
		return nil
	}
	fmt.Fprintf(out, "  Date:          %s\n", log.Date)
	fmt.Fprintf(out, "  Daily budget:  %s\n", log.DailyBudget)
	fmt.Fprintf(out, "  Carryover:     %s\n", log.Carryover)
	fmt.Fprintf(out, "  Total spent:   %s\n", log.TotalSpent)
	fmt.Fprintf(out, "  Remaining:     %s\n", log.Remaining)
	return nil
}

// reconcileLedger refreshes the allowance for date and recounts its spending,
// both under the user's ledger lock.
func reconcileLedger(ctx context.Context, injector *dependency.Injector, userID uuid.UUID, date valueobject.Date) (*entity.DailyLog, error) {
	var log *entity.DailyLog
	err := injector.Locker.WithLock(ctx, userID, func(ctx context.Context) error {
		refreshed, err := injector.Refresher.Refresh(ctx, userID, date)
		if err != nil {
			return err
		}
		if refreshed == nil {
			return nil
		}
		log, err = injector.Reconciler.Reconcile(ctx, userID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

func refreshDate(cfg *config.Config) (valueobject.Date, error) {
	if flagRefreshDate != "" {
		return valueobject.ParseDate(flagRefreshDate)
	}
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return valueobject.Date{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}
	return valueobject.TodayIn(time.Now(), loc), nil
}
