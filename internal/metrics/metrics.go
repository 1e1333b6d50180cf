// Package metrics defines and registers all custom Prometheus metrics for the
// incident console. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the watch-mode ops server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "incident_console"

// ── HTTP pipeline metrics ─────────────────────────────────────────────────────

// RequestsTotal counts outbound API requests by final outcome.
// Labels:
//   - method: HTTP method of the request
//   - outcome: "2xx", "4xx", "5xx", or "network" when no response arrived
var RequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Total number of outbound API requests, by method and outcome class.",
	},
	[]string{"method", "outcome"},
)

// RequestDuration measures the wall time of one outbound request, including
// body decode.
var RequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Duration of outbound API requests from send to decoded response.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method"},
)

// ── Notification metrics ──────────────────────────────────────────────────────

// NotificationsTotal counts toasts handed to the notification sink.
// Label:
//   - kind: "success", "error", or "info"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of user-facing notifications emitted, by kind.",
	},
	[]string{"kind"},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionTeardownsTotal counts full session teardowns.
// Label:
//   - reason: "logout", "expired" (401), or "corrupt" (hydration parse failure)
var SessionTeardownsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_teardowns_total",
		Help:      "Total number of session teardowns, by reason.",
	},
	[]string{"reason"},
)
