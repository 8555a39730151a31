// Package metrics defines and registers all custom Prometheus metrics for the
// company portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Request workflow metrics ──────────────────────────────────────────────────

// RequestsSubmittedTotal counts service requests submitted by clients.
var RequestsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_submitted_total",
		Help:      "Total number of service requests submitted.",
	},
)

// RequestsReviewedTotal counts review decisions on service requests.
// Label:
//   - decision: "approved" or "rejected"
var RequestsReviewedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_reviewed_total",
		Help:      "Total number of service requests reviewed, by decision.",
	},
	[]string{"decision"},
)

// ── Project metrics ───────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts new projects.
// Label:
//   - origin: "approval" (spawned by an approved request) or "direct" (admin)
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by origin.",
	},
	[]string{"origin"},
)

// ── Messaging metrics ─────────────────────────────────────────────────────────

// MessagesSentTotal counts messages accepted by the message log.
// Label:
//   - sender_role: "admin", "employee", or "client"
var MessagesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "messages_sent_total",
		Help:      "Total number of messages sent, by sender role.",
	},
	[]string{"sender_role"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failed", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
