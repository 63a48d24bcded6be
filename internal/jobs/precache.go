// Package jobs runs scheduled background work.
package jobs

import (
	"context"
	"time"

	"teamup-backend/internal/logger"
	"teamup-backend/internal/metrics"
	"teamup-backend/internal/service"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

const precacheJobName = "precache_recommend"

// Warmer recomputes and stores one recommendation page
type Warmer interface {
	WarmRecommendations(ctx context.Context, userID uuid.UUID, page, pageSize int) error
}

// PrecacheConfig configures the recommendation warm-up
type PrecacheConfig struct {
	Spec     string // six-field cron spec, seconds first
	UserIDs  []uuid.UUID
	PageSize int
	Timeout  time.Duration
}

// PrecacheJob warms the first recommendation page of selected users. Only one replica
// runs it per tick: the run is skipped when another holds the job lock.
type PrecacheJob struct {
	warmer Warmer
	locks  service.LockAcquirer
	cfg    PrecacheConfig
	cron   *cron.Cron
}

// NewPrecacheJob creates the job; call Start to schedule it
func NewPrecacheJob(warmer Warmer, locks service.LockAcquirer, cfg PrecacheConfig) *PrecacheJob {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 20
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &PrecacheJob{warmer: warmer, locks: locks, cfg: cfg}
}

// Start schedules the job on its cron spec
func (j *PrecacheJob) Start() error {
	j.cron = cron.New(cron.WithSeconds())
	if _, err := j.cron.AddFunc(j.cfg.Spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.cfg.Timeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return err
	}
	j.cron.Start()
	logger.New().WithFields(map[string]interface{}{
		"job":   precacheJobName,
		"spec":  j.cfg.Spec,
		"users": len(j.cfg.UserIDs),
	}).Info("scheduled job registered")
	return nil
}

// Stop waits for a running tick to finish
func (j *PrecacheJob) Stop() {
	if j.cron == nil {
		return
	}
	<-j.cron.Stop().Done()
}

// Run performs one warm-up pass and reports whether it ran
func (j *PrecacheJob) Run(ctx context.Context) bool {
	log := logger.New().WithField("job", precacheJobName)

	// the lease outlives a run but still expires if this replica dies mid-run
	lease, ok, err := j.locks.TryAcquire(ctx, "job:"+precacheJobName, 0, j.cfg.Timeout)
	if err != nil {
		metrics.JobRunsTotal.WithLabelValues(precacheJobName, "error").Inc()
		log.Errorf("failed to take job lock: %v", err)
		return false
	}
	if !ok {
		metrics.JobRunsTotal.WithLabelValues(precacheJobName, "skipped").Inc()
		log.Debug("job lock held elsewhere, skipping run")
		return false
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			log.Errorf("failed to release job lock: %v", err)
		}
	}()

	failed := 0
	for _, userID := range j.cfg.UserIDs {
		if err := j.warmer.WarmRecommendations(ctx, userID, 1, j.cfg.PageSize); err != nil {
			failed++
			log.WithField("user_id", userID).Errorf("failed to warm recommendations: %v", err)
		}
	}

	result := "ok"
	if failed > 0 {
		result = "error"
	}
	metrics.JobRunsTotal.WithLabelValues(precacheJobName, result).Inc()
	log.Infof("warmed recommendations for %d/%d users", len(j.cfg.UserIDs)-failed, len(j.cfg.UserIDs))
	return true
}
