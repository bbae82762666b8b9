package app

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunnerRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ada_bridge_runner_runs_total",
			Help: "Total number of runner cycles",
		},
		[]string{"service"},
	)

	RunnerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ada_bridge_runner_failures_total",
			Help: "Total number of runner cycles that reported a failure",
		},
		[]string{"service"},
	)

	RunnerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ada_bridge_runner_duration_seconds",
			Help:    "Runner cycle duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	LocksObserved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ada_bridge_locks_observed_total",
		Help: "Total number of lock transactions stored",
	})

	MintsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ada_bridge_mints_queued_total",
		Help: "Total number of ckb mints queued",
	})

	UnlocksSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ada_bridge_unlocks_settled_total",
		Help: "Total number of unlocks marked success after being observed on cardano",
	})

	UnlocksDispatched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ada_bridge_unlocks_dispatched_total",
		Help: "Total number of unlocks submitted in a cardano payment",
	})

	UnlocksFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ada_bridge_unlocks_failed_total",
		Help: "Total number of unlocks marked error by the dispatcher",
	})

	NatsConnectionStatus = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "ada_bridge_nats_connection_status",
		Help: "NATS connection status (1=connected, 0=disconnected)",
	})
)

func ObserveRun(service string, healthy bool, duration time.Duration) {
	RunnerRuns.WithLabelValues(service).Inc()
	if !healthy {
		RunnerFailures.WithLabelValues(service).Inc()
	}
	RunnerDuration.WithLabelValues(service).Observe(duration.Seconds())
}
