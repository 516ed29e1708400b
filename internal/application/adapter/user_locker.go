package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserLocker serializes ledger writes of a single user across processes.
type UserLocker interface {
	// WithLock runs fn while holding the user's lock. Returns domainerror.ErrLedgerBusy
	// when the lock cannot be obtained in time.
	WithLock(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context) error) error
}

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}
