// Package settings contains user preference use cases.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/application/carryover"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/domain/valueobject"
)

// UpdateSettingsInput carries the settings to change; nil fields are left as they are.
type UpdateSettingsInput struct {
	UserID        uuid.UUID
	Name          *string
	MonthStartDay *int
	Locale        *string
	Today         valueobject.Date
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	User     *entity.User
	DailyLog *entity.DailyLog
}

// UpdateSettingsUseCase updates user preferences. A start day change moves
// period boundaries, so today's ledger row is refreshed afterwards.
type UpdateSettingsUseCase struct {
	userRepo  adapter.UserRepository
	refresher *carryover.Refresher
	locker    adapter.UserLocker
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(
	userRepo adapter.UserRepository,
	refresher *carryover.Refresher,
	locker adapter.UserLocker,
) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		userRepo:  userRepo,
		refresher: refresher,
		locker:    locker,
	}
}

// Execute applies the settings.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	if input.MonthStartDay != nil && !entity.ValidMonthStartDay(*input.MonthStartDay) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidStartDay,
			"month start day must be between 1 and 28",
			domainerror.ErrInvalidStartDay,
		)
	}

	var locale string
	if input.Locale != nil {
		tag, err := language.Parse(*input.Locale)
		if err != nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidLocale,
				"locale must be a BCP 47 language tag",
				domainerror.ErrInvalidLocale,
			)
		}
		locale = tag.String()
	}

	output := &UpdateSettingsOutput{}
	err := uc.locker.WithLock(ctx, input.UserID, func(ctx context.Context) error {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return domainerror.NewBudgetError(domainerror.ErrCodeBudgetUserNotFound, "user not found", err)
		}
		if err != nil {
			return fmt.Errorf("failed to find user: %w", err)
		}

		if input.Name != nil {
			user.Name = strings.TrimSpace(*input.Name)
		}
		if input.MonthStartDay != nil {
			day := *input.MonthStartDay
			user.MonthStartDay = &day
		}
		if input.Locale != nil {
			user.Locale = locale
		}
		user.UpdatedAt = time.Now().UTC()

		if err := uc.userRepo.Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		output.User = user

		log, err := uc.refresher.Refresh(ctx, input.UserID, input.Today)
		if err != nil {
			return err
		}
		output.DailyLog = log
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("User settings updated", "userID", input.UserID, "monthStartDay", output.User.StartDay())

	return output, nil
}
