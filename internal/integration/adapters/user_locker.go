package adapters

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/daily-budget/backend/internal/application/adapter"
	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

const userLockKeyPrefix = "daily-budget:ledger:"

// redisUserLocker serializes ledger writes per user across API instances.
type redisUserLocker struct {
	locker  *redislock.Client
	ttl     time.Duration
	options *redislock.Options
}

// NewRedisUserLocker creates a user locker backed by Redis. Obtaining a lock is
// retried with linear backoff up to retries times before giving up.
func NewRedisUserLocker(client *redis.Client, ttl, backoff time.Duration, retries int) adapter.UserLocker {
	return &redisUserLocker{
		locker: redislock.New(client),
		ttl:    ttl,
		options: &redislock.Options{
			RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(backoff), retries),
		},
	}
}

// WithLock runs fn while holding the user's Redis lock.
func (l *redisUserLocker) WithLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error {
	lock, err := l.locker.Obtain(ctx, userLockKeyPrefix+userID.String(), l.ttl, l.options)
	if errors.Is(err, redislock.ErrNotObtained) {
		return domainerror.NewBudgetError(domainerror.ErrCodeLedgerBusy, "ledger is busy, try again", domainerror.ErrLedgerBusy)
	}
	if err != nil {
		return fmt.Errorf("failed to obtain ledger lock: %w", err)
	}
	defer func() {
		// Use a fresh context so a cancelled request still releases its lock.
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			slog.Warn("Failed to release ledger lock", "userID", userID, "error", err)
		}
	}()

	return fn(ctx)
}

// localUserLocker serializes ledger writes per user inside one process. It is
// used when Redis is not configured.
type localUserLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	sem     chan struct{}
	waiters int
}

// NewLocalUserLocker creates an in-process user locker.
func NewLocalUserLocker() adapter.UserLocker {
	return &localUserLocker{locks: make(map[uuid.UUID]*userLock)}
}

// WithLock runs fn while holding the user's in-process lock.
func (l *localUserLocker) WithLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	lock, ok := l.locks[userID]
	if !ok {
		lock = &userLock{sem: make(chan struct{}, 1)}
		l.locks[userID] = lock
	}
	lock.waiters++
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		lock.waiters--
		if lock.waiters == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}()

	select {
	case lock.sem <- struct{}{}:
	case <-ctx.Done():
		return domainerror.NewBudgetError(domainerror.ErrCodeLedgerBusy, "ledger is busy, try again", domainerror.ErrLedgerBusy)
	}
	defer func() { <-lock.sem }()

	return fn(ctx)
}
