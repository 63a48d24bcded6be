package lock

import (
	"context"
	"errors"
	"time"

	"teamup-backend/internal/metrics"

	"github.com/cenkalti/backoff/v4"
)

// Options bounds how long Acquire keeps retrying a contended key
type Options struct {
	Prefix          string
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// MaxWait is the default retry budget used when Acquire is called with wait < 0
	MaxWait time.Duration
}

// Acquirer wraps a Locker with key namespacing and bounded exponential backoff
type Acquirer struct {
	locker Locker
	opts   Options
}

// NewAcquirer creates an Acquirer. Zero options fall back to 10ms/200ms/3s.
func NewAcquirer(locker Locker, opts Options) *Acquirer {
	if opts.InitialInterval <= 0 {
		opts.InitialInterval = 10 * time.Millisecond
	}
	if opts.MaxInterval <= 0 {
		opts.MaxInterval = 200 * time.Millisecond
	}
	if opts.MaxInterval < opts.InitialInterval {
		opts.MaxInterval = opts.InitialInterval
	}
	if opts.MaxWait <= 0 {
		opts.MaxWait = 3 * time.Second
	}
	return &Acquirer{locker: locker, opts: opts}
}

// TryAcquire takes key, retrying with jittered exponential backoff until wait
// elapses. wait == 0 makes a single attempt; wait < 0 uses the configured MaxWait.
// It returns (nil, false, nil) when the key stayed contended for the whole budget.
func (a *Acquirer) TryAcquire(ctx context.Context, key string, wait, lease time.Duration) (Lease, bool, error) {
	if wait < 0 {
		wait = a.opts.MaxWait
	}
	key = a.opts.Prefix + key
	start := time.Now()

	var held Lease
	attempt := func() error {
		metrics.LockAttemptsTotal.Inc()
		l, err := a.locker.TryLock(ctx, key, lease)
		if err == nil {
			held = l
			return nil
		}
		if errors.Is(err, ErrNotAcquired) {
			return err
		}
		return backoff.Permanent(err)
	}

	var err error
	if wait == 0 {
		err = attempt()
	} else {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = a.opts.InitialInterval
		b.MaxInterval = a.opts.MaxInterval
		b.MaxElapsedTime = wait
		b.RandomizationFactor = 0.5
		b.Multiplier = 2
		err = backoff.Retry(attempt, backoff.WithContext(b, ctx))
	}

	elapsed := time.Since(start).Seconds()
	switch {
	case err == nil:
		metrics.LockWaitSeconds.WithLabelValues("acquired").Observe(elapsed)
		return held, true, nil
	case errors.Is(err, ErrNotAcquired):
		metrics.LockWaitSeconds.WithLabelValues("timeout").Observe(elapsed)
		return nil, false, nil
	default:
		metrics.LockWaitSeconds.WithLabelValues("error").Observe(elapsed)
		return nil, false, err
	}
}
