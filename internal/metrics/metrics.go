// Package metrics exposes Prometheus instrumentation for the sync
// engine and the reference server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pass result label values.
const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Replay outcome label values.
const (
	OutcomeAcked    = "acked"
	OutcomeRejected = "rejected"
	OutcomeRequeued = "requeued"
)

// Engine holds the sync engine's metrics.
type Engine struct {
	// SyncPasses counts completed sync passes by result.
	SyncPasses *prometheus.CounterVec
	// OperationsReplayed counts per-operation replay outcomes.
	OperationsReplayed *prometheus.CounterVec
	// PendingOperations is the current queue depth.
	PendingOperations prometheus.Gauge
	// PassDuration observes full pass latency.
	PassDuration prometheus.Histogram
}

// NewEngine registers and returns the engine metrics.
func NewEngine(reg prometheus.Registerer) *Engine {
	factory := promauto.With(reg)

	return &Engine{
		SyncPasses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plansync",
			Name:      "sync_passes_total",
			Help:      "Completed sync passes by result.",
		}, []string{"result"}),
		OperationsReplayed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plansync",
			Name:      "operations_replayed_total",
			Help:      "Replayed pending operations by outcome.",
		}, []string{"outcome"}),
		PendingOperations: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "plansync",
			Name:      "pending_operations",
			Help:      "Current pending operation queue depth.",
		}),
		PassDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "plansync",
			Name:      "sync_pass_duration_seconds",
			Help:      "Full sync pass duration.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Server holds the reference server's HTTP metrics.
type Server struct {
	// Requests counts handled HTTP requests by path and status class.
	Requests *prometheus.CounterVec
	// Duration observes request latency by path.
	Duration *prometheus.HistogramVec
}

// NewServer registers and returns the server metrics.
func NewServer(reg prometheus.Registerer) *Server {
	factory := promauto.With(reg)

	return &Server{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "plansync_server",
			Name:      "http_requests_total",
			Help:      "Handled HTTP requests.",
		}, []string{"method", "path", "status"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "plansync_server",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}
