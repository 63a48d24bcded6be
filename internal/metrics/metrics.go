// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "teamup"

var (
	// TeamJoinsTotal counts join attempts by outcome kind ("ok", "conflict", ...)
	TeamJoinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "team_joins_total",
			Help:      "Team join attempts by outcome",
		},
		[]string{"outcome"},
	)

	// TeamQuitsTotal counts quits by what happened to the team
	TeamQuitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "team_quits_total",
			Help:      "Team quits by effect (left, transferred, dissolved)",
		},
		[]string{"effect"},
	)

	// LockWaitSeconds measures time spent acquiring named locks
	LockWaitSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "lock_wait_seconds",
			Help:      "Time spent acquiring named locks",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
		},
		[]string{"result"},
	)

	// LockAttemptsTotal counts individual lock attempts, including retries
	LockAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lock_attempts_total",
			Help:      "Individual lock acquisition attempts",
		},
	)

	// CacheLookupsTotal counts recommendation cache lookups by result (hit, miss, error)
	CacheLookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommend_cache_lookups_total",
			Help:      "Recommendation cache lookups by result",
		},
		[]string{"result"},
	)

	// JobRunsTotal counts scheduled job runs by job and result
	JobRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "job_runs_total",
			Help:      "Scheduled job runs by result",
		},
		[]string{"job_name", "result"},
	)

	// HTTPRequestsTotal counts processed HTTP requests
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures handler latency
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "route", "status"},
	)
)

// Register adds every collector to reg. Collectors that are already registered are skipped.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		TeamJoinsTotal,
		TeamQuitsTotal,
		LockWaitSeconds,
		LockAttemptsTotal,
		CacheLookupsTotal,
		JobRunsTotal,
		HTTPRequestsTotal,
		HTTPRequestDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveHTTPRequest records one handled request
func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"route":  route,
		"status": strconv.Itoa(status),
	}
	HTTPRequestsTotal.With(labels).Inc()
	HTTPRequestDuration.With(labels).Observe(duration.Seconds())
}
