// Package lock provides named mutual exclusion across service replicas.
package lock

import (
	"context"
	"errors"
	"time"
)

// ErrNotAcquired is returned by TryLock when another holder owns the key
var ErrNotAcquired = errors.New("lock is held by another owner")

// Lease is a held lock. Release is a no-op once the lease is no longer held by
// its owner (already released, expired, or taken over).
type Lease interface {
	Key() string
	Release(ctx context.Context) error
}

// Locker makes a single, non-blocking acquisition attempt. A lease duration of
// zero or less holds the lock until it is released.
type Locker interface {
	TryLock(ctx context.Context, key string, lease time.Duration) (Lease, error)
}
