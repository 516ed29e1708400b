package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/daily-budget/backend/internal/integration/persistence/memory"
)

func newTestTokenService() *tokenService {
	return NewTokenService("test-secret", TokenDurations{Access: time.Minute, Refresh: time.Hour}, memory.NewStore().RefreshTokens()).(*tokenService)
}

func TestTokenService_RoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestTokenService()
	userID := uuid.New()

	pair, err := svc.GenerateTokenPair(ctx, userID, "ana@example.com", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID || claims.Email != "ana@example.com" {
		t.Errorf("unexpected claims %+v", claims)
	}

	if _, err := svc.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Error("a refresh token must not be accepted as an access token")
	}
	if _, err := svc.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
		t.Error("an access token must not be accepted as a refresh token")
	}

	valid, err := svc.IsRefreshTokenValid(ctx, pair.RefreshToken)
	if err != nil || !valid {
		t.Fatalf("expected refresh token to be valid, got %v, %v", valid, err)
	}
	if err := svc.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid, _ := svc.IsRefreshTokenValid(ctx, pair.RefreshToken); valid {
		t.Error("expected refresh token to be revoked")
	}
}

func TestTokenService_RejectsForeignTokens(t *testing.T) {
	svc := newTestTokenService()

	tests := []struct {
		name   string
		method jwt.SigningMethod
		key    any
		issuer string
	}{
		{name: "wrong secret", method: jwt.SigningMethodHS256, key: []byte("other-secret"), issuer: tokenIssuer},
		{name: "wrong issuer", method: jwt.SigningMethodHS256, key: []byte("test-secret"), issuer: "someone-else"},
		{name: "unexpected algorithm", method: jwt.SigningMethodHS512, key: []byte("test-secret"), issuer: tokenIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Now()
			token := jwt.NewWithClaims(tt.method, CustomClaims{
				UserID:    uuid.NewString(),
				TokenType: tokenTypeAccess,
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
					Issuer:    tt.issuer,
				},
			})
			signed, err := token.SignedString(tt.key)
			if err != nil {
				t.Fatalf("failed to sign: %v", err)
			}

			if _, err := svc.ValidateAccessToken(context.Background(), signed); err == nil {
				t.Error("expected the token to be rejected")
			}
		})
	}
}
