package service

import (
	"context"

	apperrors "teamup-backend/internal/errors"
	"teamup-backend/internal/lock"
	"teamup-backend/internal/logger"
)

// acquire takes key within the configured budget. Contention that outlasts the budget
// and lock backend failures both surface as LockUnavailable.
func acquire(ctx context.Context, locks LockAcquirer, key string, cfg LockSettings) (lock.Lease, error) {
	lease, ok, err := locks.TryAcquire(ctx, key, cfg.Wait, cfg.Lease)
	if err != nil {
		return nil, apperrors.NewLockError(err)
	}
	if !ok {
		logger.WithContext(ctx).WithField("key", key).Debug("lock busy, retry budget exhausted")
		return nil, apperrors.ErrLockUnavailable
	}
	return lease, nil
}

// releaseLease releases a held lease even if ctx has been cancelled
func releaseLease(ctx context.Context, lease lock.Lease) {
	if lease == nil {
		return
	}
	if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
		logger.WithContext(ctx).WithField("key", lease.Key()).Errorf("failed to release lock: %v", err)
	}
}
