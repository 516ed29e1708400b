package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/daily-budget/backend/internal/application/adapter"
	"github.com/daily-budget/backend/internal/domain/entity"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

// Session is an issued token pair together with the user it belongs to.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

func issueSession(ctx context.Context, tokens adapter.TokenService, user *entity.User, rememberMe bool) (*Session, error) {
	pair, err := tokens.GenerateTokenPair(ctx, user.ID, user.Email, rememberMe)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}
	return &Session{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Unknown email and wrong password get the same answer.
func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}

func invalidRefreshToken(message string) error {
	return domainerror.NewAuthError(domainerror.ErrCodeInvalidToken, message, domainerror.ErrInvalidToken)
}

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email      string
	Password   string
	RememberMe bool
}

// LoginUserUseCase opens a session for a user with valid credentials.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute checks the credentials and issues a session. Hashes stored with an
// outdated cost are upgraded on the way.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*Session, error) {
	user, err := uc.userRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, invalidCredentials()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, invalidCredentials()
	}

	if uc.passwordService.NeedsRehash(user.PasswordHash) {
		uc.rehash(ctx, user, input.Password)
	}

	return issueSession(ctx, uc.tokenService, user, input.RememberMe)
}

// rehash is best effort; the login already succeeded.
func (uc *LoginUserUseCase) rehash(ctx context.Context, user *entity.User, password string) {
	hash, err := uc.passwordService.HashPassword(password)
	if err != nil {
		slog.Warn("Failed to rehash password", "userID", user.ID, "error", err)
		return
	}
	previous := user.PasswordHash
	user.PasswordHash = hash
	if err := uc.userRepo.Update(ctx, user); err != nil {
		user.PasswordHash = previous
		slog.Warn("Failed to store rehashed password", "userID", user.ID, "error", err)
		return
	}
	slog.Info("Password hash upgraded", "userID", user.ID)
}

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenUseCase rotates a refresh token. The presented token is revoked
// before the new pair is issued.
type RefreshTokenUseCase struct {
	userRepo     adapter.UserRepository
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(userRepo adapter.UserRepository, tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Execute performs the token rotation.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*Session, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, invalidRefreshToken("invalid or expired refresh token")
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check token validity: %w", err)
	}
	if !valid {
		return nil, invalidRefreshToken("refresh token has been revoked")
	}

	user, err := uc.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return nil, domainerror.NewAuthError(domainerror.ErrCodeUserNotFound, "user no longer exists", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate old token: %w", err)
	}

	return issueSession(ctx, uc.tokenService, user, false)
}

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase revokes a refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{tokenService: tokenService}
}

// Execute revokes the token. An unknown or already revoked token is not an error.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		slog.Debug("Refresh token not revoked on logout", "error", err)
	}
	return nil
}
