package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type refreshToken struct {
	userID      uuid.UUID
	expiresAt   time.Time
	invalidated bool
}

type refreshTokenRepository struct{ s *Store }

func (r *refreshTokenRepository) SaveRefreshToken(_ context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.refreshTokens[token] = refreshToken{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *refreshTokenRepository) IsRefreshTokenValid(_ context.Context, token string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	stored, ok := r.s.refreshTokens[token]
	return ok && !stored.invalidated && stored.expiresAt.After(time.Now().UTC()), nil
}

func (r *refreshTokenRepository) InvalidateRefreshToken(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if stored, ok := r.s.refreshTokens[token]; ok {
		stored.invalidated = true
		r.s.refreshTokens[token] = stored
	}
	return nil
}
