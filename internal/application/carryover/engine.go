// Package carryover maintains the per-day ledger: it creates today's DailyLog
// with the balance carried over from yesterday, or refreshes the allowance of
// a log that already exists.
package carryover

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/allowance"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/period"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// Input carries everything needed to derive today's allowance.
type Input struct {
	UserID             uuid.UUID
	MonthlyAmount      valueobject.Amount
	TotalFixedExpenses valueobject.Amount
	TotalIncomes       valueobject.Amount
	Month              time.Month
	Year               int
	StartDay           int
	Today              valueobject.Date
}

// Engine initializes or refreshes daily ledger rows.
type Engine struct {
	dailyLogRepo adapter.DailyLogRepository
	metrics      adapter.LedgerMetrics
}

// NewEngine creates a new Engine instance.
func NewEngine(dailyLogRepo adapter.DailyLogRepository, metrics adapter.LedgerMetrics) *Engine {
	if metrics == nil {
		metrics = adapter.NopLedgerMetrics{}
	}
	return &Engine{
		dailyLogRepo: dailyLogRepo,
		metrics:      metrics,
	}
}

// InitializeOrRefresh returns today's ledger row, creating it when missing.
//
// A new row starts with nothing spent and carries over yesterday's remaining
// balance when yesterday belongs to the same period, zero otherwise. An existing
// row only gets its daily budget replaced; carryover and spending are kept.
// Running it twice with the same input leaves the row unchanged.
func (e *Engine) InitializeOrRefresh(ctx context.Context, input Input) (*entity.DailyLog, error) {
	p := period.Compute(input.Month, input.Year, input.StartDay)
	dailyBudget := allowance.DailyBudget(input.MonthlyAmount, input.TotalIncomes, input.TotalFixedExpenses, p.DaysInPeriod)

	existing, err := e.dailyLogRepo.FindByDate(ctx, input.UserID, input.Today)
	if err == nil {
		return e.refresh(ctx, existing, dailyBudget, adapter.DailyLogRefreshed)
	}
	if !errors.Is(err, domainerror.ErrDailyLogNotFound) {
		return nil, fmt.Errorf("failed to find daily log: %w", err)
	}

	carry, err := e.carryoverFor(ctx, input.UserID, input.Today, input.StartDay)
	if err != nil {
		return nil, err
	}

	log := entity.NewDailyLog(input.UserID, input.Today, dailyBudget, carry)
	if err := e.dailyLogRepo.Create(ctx, log); err != nil {
		if !errors.Is(err, domainerror.ErrDailyLogAlreadyExists) {
			return nil, fmt.Errorf("failed to create daily log: %w", err)
		}

		// Another request created the row between our lookup and insert.
		stored, findErr := e.dailyLogRepo.FindByDate(ctx, input.UserID, input.Today)
		if findErr != nil {
			return nil, fmt.Errorf("failed to find daily log after conflict: %w", findErr)
		}
		return e.refresh(ctx, stored, dailyBudget, adapter.DailyLogRetried)
	}

	e.metrics.IncrDailyLog(adapter.DailyLogCreated)
	slog.Info("Daily log initialized",
		"userID", input.UserID,
		"date", input.Today.String(),
		"dailyBudget", log.DailyBudget.String(),
		"carryover", log.Carryover.String(),
	)

	return log, nil
}

func (e *Engine) refresh(ctx context.Context, log *entity.DailyLog, dailyBudget valueobject.Amount, action string) (*entity.DailyLog, error) {
	log.SetDailyBudget(dailyBudget)
	if err := e.dailyLogRepo.Update(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to update daily log: %w", err)
	}

	e.metrics.IncrDailyLog(action)
	slog.Debug("Daily log refreshed",
		"userID", log.UserID,
		"date", log.Date.String(),
		"dailyBudget", log.DailyBudget.String(),
		"remaining", log.Remaining.String(),
	)

	return log, nil
}

// carryoverFor returns yesterday's remaining balance when yesterday is in the
// same period as today. A missing log for yesterday carries nothing.
func (e *Engine) carryoverFor(ctx context.Context, userID uuid.UUID, today valueobject.Date, startDay int) (valueobject.SignedAmount, error) {
	yesterday := today.Yesterday()
	if !period.AreInSamePeriod(yesterday, today, startDay) {
		return valueobject.ZeroSigned, nil
	}

	prev, err := e.dailyLogRepo.FindByDate(ctx, userID, yesterday)
	if errors.Is(err, domainerror.ErrDailyLogNotFound) {
		return valueobject.ZeroSigned, nil
	}
	if err != nil {
		return valueobject.ZeroSigned, fmt.Errorf("failed to find previous daily log: %w", err)
	}

	return prev.Remaining, nil
}
