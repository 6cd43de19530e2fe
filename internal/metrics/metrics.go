// Package metrics exposes Prometheus instruments for retrievals and demo
// requests, plus in-process latency windows for the stats endpoint.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Retrieval outcomes.
const (
	OutcomeMatch    = "match"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
)

// Demo names used as label values.
const (
	DemoQA     = "qa"
	DemoSQL    = "sql"
	DemoCredit = "credit_score"
)

var (
	retrievals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aidemo_retrievals_total",
			Help: "Total context retrievals by outcome",
		},
		[]string{"outcome"},
	)
	demoRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aidemo_demo_requests_total",
			Help: "Total demo requests by demo and status",
		},
		[]string{"demo", "status"},
	)
	demoDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aidemo_demo_duration_seconds",
			Help:    "Demo request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"demo"},
	)

	registerOnce sync.Once
)

// Init registers the collectors with reg. Safe to call more than once; only
// the first registry wins.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		reg.MustRegister(retrievals, demoRequests, demoDuration)
	})
}

// RecordRetrieval counts one retrieval outcome.
func RecordRetrieval(outcome string) {
	retrievals.WithLabelValues(outcome).Inc()
}

// RecordDemo counts one demo request and observes its duration.
func RecordDemo(demo string, err error, d time.Duration) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	demoRequests.WithLabelValues(demo, status).Inc()
	demoDuration.WithLabelValues(demo).Observe(d.Seconds())
}
