package adapters

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/daily-budget/backend/internal/domain/error"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisUserLocker_ReleasesAfterRun(t *testing.T) {
	client := newTestRedis(t)
	locker := NewRedisUserLocker(client, time.Second, 10*time.Millisecond, 3)
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		ran := false
		err := locker.WithLock(context.Background(), userID, func(context.Context) error {
			ran = true
			return nil
		})
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !ran {
			t.Fatalf("run %d: fn was not called", i)
		}
	}

	if n, _ := client.Exists(context.Background(), userLockKeyPrefix+userID.String()).Result(); n != 0 {
		t.Errorf("expected the lock key to be released")
	}
}

func TestRedisUserLocker_BusyWhenHeld(t *testing.T) {
	client := newTestRedis(t)
	locker := NewRedisUserLocker(client, time.Minute, 5*time.Millisecond, 2)
	userID := uuid.New()

	err := locker.WithLock(context.Background(), userID, func(ctx context.Context) error {
		return locker.WithLock(ctx, userID, func(context.Context) error {
			t.Error("nested lock must not be obtained")
			return nil
		})
	})

	if !errors.Is(err, domainerror.ErrLedgerBusy) {
		t.Errorf("expected ErrLedgerBusy, got %v", err)
	}
}

func TestRedisUserLocker_PropagatesFnError(t *testing.T) {
	locker := NewRedisUserLocker(newTestRedis(t), time.Second, 10*time.Millisecond, 1)
	boom := errors.New("boom")

	err := locker.WithLock(context.Background(), uuid.New(), func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Errorf("expected fn error, got %v", err)
	}
}

func TestLocalUserLocker_Serializes(t *testing.T) {
	locker := NewLocalUserLocker()
	userID := uuid.New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.WithLock(context.Background(), userID, func(context.Context) error {
				mu.Lock()
				active++
				if active > maxSeen {
					maxSeen = active
				}
				mu.Unlock()

				time.Sleep(time.Millisecond)

				mu.Lock()
				active--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Errorf("expected at most one holder at a time, saw %d", maxSeen)
	}
}

func TestLocalUserLocker_CancelledWhileWaiting(t *testing.T) {
	locker := NewLocalUserLocker()
	userID := uuid.New()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := locker.WithLock(context.Background(), userID, func(context.Context) error {
		return locker.WithLock(ctx, userID, func(context.Context) error { return nil })
	})
	if !errors.Is(err, domainerror.ErrLedgerBusy) {
		t.Errorf("expected ErrLedgerBusy, got %v", err)
	}
}
