package lock

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type localEntry struct {
	token     string
	expiresAt time.Time // zero means held until released
}

// LocalLocker is an in-process Locker for single-replica deployments and tests
type LocalLocker struct {
	mu    sync.Mutex
	held  map[string]localEntry
	clock func() time.Time
}

// NewLocalLocker creates an empty in-process locker
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		held:  make(map[string]localEntry),
		clock: time.Now,
	}
}

// TryLock attempts to take key once
func (l *LocalLocker) TryLock(ctx context.Context, key string, lease time.Duration) (Lease, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if entry, ok := l.held[key]; ok {
		if entry.expiresAt.IsZero() || now.Before(entry.expiresAt) {
			return nil, ErrNotAcquired
		}
	}

	entry := localEntry{token: uuid.NewString()}
	if lease > 0 {
		entry.expiresAt = now.Add(lease)
	}
	l.held[key] = entry
	return &localLease{locker: l, key: key, token: entry.token}, nil
}

func (l *LocalLocker) release(key, token string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry, ok := l.held[key]; ok && entry.token == token {
		delete(l.held, key)
	}
}

type localLease struct {
	locker *LocalLocker
	key    string
	token  string
}

func (l *localLease) Key() string {
	return l.key
}

func (l *localLease) Release(context.Context) error {
	l.locker.release(l.key, l.token)
	return nil
}
