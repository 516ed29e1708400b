package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
	"github.com/daily-budget/backend/internal/integration/adapters"
	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

type authFixture struct {
	store    *memory.Store
	register *RegisterUserUseCase
	login    *LoginUserUseCase
	refresh  *RefreshTokenUseCase
	logout   *LogoutUserUseCase
}

func newAuthFixture() *authFixture {
	store := memory.NewStore()
	passwords := adapters.NewPasswordService()
	tokens := adapters.NewTokenService("test-secret", adapters.TokenDurations{Access: time.Minute, Refresh: time.Hour}, store.RefreshTokens())

	return &authFixture{
		store:    store,
		register: NewRegisterUserUseCase(store.Users(), passwords, tokens),
		login:    NewLoginUserUseCase(store.Users(), passwords, tokens),
		refresh:  NewRefreshTokenUseCase(store.Users(), tokens),
		logout:   NewLogoutUserUseCase(tokens),
	}
}

func TestAuth_RegisterLoginRefreshLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	startDay := 10

	registered, err := f.register.Execute(ctx, RegisterUserInput{
		Email:         "  Ana@Example.com ",
		Name:          "Ana",
		Password:      "correct horse",
		MonthStartDay: &startDay,
		Locale:        "es",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if registered.User.Email != "ana@example.com" {
		t.Errorf("expected normalized email, got %q", registered.User.Email)
	}
	if registered.User.StartDay() != 10 || registered.User.Locale != "es" {
		t.Errorf("unexpected preferences: start day %d, locale %q", registered.User.StartDay(), registered.User.Locale)
	}
	if registered.AccessToken == "" || registered.RefreshToken == "" {
		t.Error("expected tokens")
	}

	loggedIn, err := f.login.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loggedIn.User.ID != registered.User.ID {
		t.Error("expected the registered user")
	}

	refreshed, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: loggedIn.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if refreshed.User == nil || refreshed.User.ID != registered.User.ID {
		t.Errorf("expected the refreshed session to carry the user, got %+v", refreshed.User)
	}
	if _, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: loggedIn.RefreshToken}); err == nil {
		t.Error("expected a used refresh token to be rejected")
	}

	if err := f.logout.Execute(ctx, LogoutUserInput{RefreshToken: refreshed.RefreshToken}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.refresh.Execute(ctx, RefreshTokenInput{RefreshToken: refreshed.RefreshToken}); err == nil {
		t.Error("expected a logged out refresh token to be rejected")
	}
}

func TestRegister_Errors(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	if _, err := f.register.Execute(ctx, RegisterUserInput{Email: "taken@example.com", Name: "Taken", Password: "long enough"}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	badDay := 31

	tests := []struct {
		name     string
		input    RegisterUserInput
		expected error
	}{
		{name: "invalid email", input: RegisterUserInput{Email: "nope", Password: "long enough"}, expected: domainerror.ErrInvalidEmail},
		{name: "short password", input: RegisterUserInput{Email: "a@example.com", Password: "short"}, expected: domainerror.ErrWeakPassword},
		{name: "start day out of range", input: RegisterUserInput{Email: "a@example.com", Password: "long enough", MonthStartDay: &badDay}, expected: domainerror.ErrInvalidStartDay},
		{name: "invalid locale", input: RegisterUserInput{Email: "a@example.com", Password: "long enough", Locale: "???"}, expected: domainerror.ErrInvalidLocale},
		{name: "duplicate email", input: RegisterUserInput{Email: "TAKEN@example.com", Password: "long enough"}, expected: domainerror.ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.register.Execute(ctx, tt.input)
			if !errors.Is(err, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	if _, err := f.register.Execute(ctx, RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "correct horse"}); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	for _, input := range []LoginUserInput{
		{Email: "ana@example.com", Password: "wrong horse"},
		{Email: "nobody@example.com", Password: "correct horse"},
	} {
		_, err := f.login.Execute(ctx, input)
		if !errors.Is(err, domainerror.ErrInvalidCredentials) {
			t.Errorf("%s: expected ErrInvalidCredentials, got %v", input.Email, err)
		}
	}
}

func TestRegister_DefaultsToCalendarMonths(t *testing.T) {
	f := newAuthFixture()
	output, err := f.register.Execute(context.Background(), RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "correct horse"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.User.MonthStartDay != nil || output.User.StartDay() != entity.MinMonthStartDay {
		t.Errorf("expected calendar months by default, got %v", output.User.MonthStartDay)
	}
	if output.User.Locale != entity.DefaultLocale {
		t.Errorf("expected default locale, got %q", output.User.Locale)
	}
}

func TestLogin_UpgradesWeakHash(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	weak, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash: %v", err)
	}
	user := entity.NewUser("old@example.com", "Old", string(weak))
	if err := f.store.Users().Create(ctx, user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	if _, err := f.login.Execute(ctx, LoginUserInput{Email: "old@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := f.store.Users().FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(stored.PasswordHash))
	if err != nil {
		t.Fatalf("stored hash is not bcrypt: %v", err)
	}
	if cost <= bcrypt.MinCost {
		t.Errorf("expected the hash cost to be upgraded, got %d", cost)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")); err != nil {
		t.Errorf("expected the upgraded hash to match the password: %v", err)
	}

	t.Run("current hash is kept", func(t *testing.T) {
		if _, err := f.login.Execute(ctx, LoginUserInput{Email: "old@example.com", Password: "correct horse"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		again, err := f.store.Users().FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("failed to reload user: %v", err)
		}
		if again.PasswordHash != stored.PasswordHash {
			t.Error("expected the hash to stay unchanged once it uses the current cost")
		}
	})
}
