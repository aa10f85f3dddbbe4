package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "revenue",
		Subsystem: "host",
		Name:      "calls_total",
		Help:      "Number of executed calls, by path and result.",
	}, []string{"path", "result"})
	mCallDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "revenue",
		Subsystem: "host",
		Name:      "call_duration_seconds",
		Help:      "Time spent executing a single call.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	})
	mVersion = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "revenue",
		Subsystem: "host",
		Name:      "committed_version",
		Help:      "Latest committed state version.",
	})
)
