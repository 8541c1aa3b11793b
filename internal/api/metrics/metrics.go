// Package metrics defines and registers all custom Prometheus metrics for
// the construction-system API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "construction"

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsResolvedTotal counts session-resolution outcomes per request.
// Label:
//   - outcome: "ok" (valid identity), "anonymous" (no cookie), or
//     "invalid" (malformed, expired, unsigned, or revoked credential)
var SessionsResolvedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_resolved_total",
		Help:      "Total number of session credential resolutions, by outcome.",
	},
	[]string{"outcome"},
)

// SessionsRevokedTotal counts session invalidations.
// Label:
//   - reason: "stale_binding" (bound project disappeared) or "logout"
var SessionsRevokedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of session credentials revoked, by reason.",
	},
	[]string{"reason"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Read-state metrics ────────────────────────────────────────────────────────

// ReadAcksTotal counts successful project read acknowledgments.
var ReadAcksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "read_acks_total",
		Help:      "Total number of project read acknowledgments recorded.",
	},
)
