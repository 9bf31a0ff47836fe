// Package observability provides Prometheus collectors and OpenTelemetry tracing setup.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerflow_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records repository query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "careerflow_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// ApplicationsSubmitted counts accepted applications.
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careerflow_applications_submitted_total",
		Help: "Total number of applications submitted",
	})

	// DuplicateApplications counts applications rejected by the (job, applicant) uniqueness constraint.
	DuplicateApplications = promauto.NewCounter(prometheus.CounterOpts{
		Name: "careerflow_applications_duplicate_total",
		Help: "Total number of duplicate application attempts",
	})

	// ApplicationStatusChanges counts status transitions by target status.
	ApplicationStatusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerflow_application_status_changes_total",
		Help: "Total number of application status transitions by new status",
	}, []string{"status"})

	// SideEffectDeliveries counts best-effort deliveries by channel and outcome.
	SideEffectDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerflow_side_effect_deliveries_total",
		Help: "Best-effort side effect deliveries by channel and outcome",
	}, []string{"channel", "outcome"})

	// AuthEvents counts signup, login and logout attempts by outcome.
	AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerflow_auth_events_total",
		Help: "Authentication events by type and outcome",
	}, []string{"event", "outcome"})

	// ActiveWebSockets is the number of open notification sockets.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "careerflow_websocket_connections",
		Help: "Number of active notification WebSocket connections",
	})

	// WebSocketDrops counts notification pushes dropped because a client buffer was full or closed.
	WebSocketDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "careerflow_websocket_drops_total",
		Help: "Notification pushes dropped due to backpressure",
	}, []string{"reason"})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

// Outcome labels a counter with "success" or "failure".
func Outcome(err error) string {
	if err != nil {
		return "failure"
	}
	return "success"
}
