// Package metrics defines and registers all custom Prometheus metrics for
// the lecture platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry at init time via promauto; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lecture"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", or "invalid_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful user registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successfully registered users.",
	},
)

// AuthRejectionsTotal counts requests the authentication gate rejected.
// Label:
//   - reason: "token_missing", "token_invalid", or "identity_gone"
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total number of requests rejected by the authentication gate.",
	},
	[]string{"reason"},
)

// RBACDenialsTotal counts requests the authorization gate denied.
// Labels:
//   - role:     the authenticated role that was denied
//   - resource: the protected resource ("lecture", "user")
//   - action:   the attempted action ("view", "detail", "create", "update", "delete")
var RBACDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rbac_denials_total",
		Help:      "Total number of requests denied by role-based access control.",
	},
	[]string{"role", "resource", "action"},
)

// ── Lecture metrics ───────────────────────────────────────────────────────────

// LecturesCreatedTotal counts newly created lectures.
var LecturesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lectures_created_total",
		Help:      "Total number of lectures created.",
	},
)

// VideoUploadDuration measures how long a lecture creation takes end-to-end,
// dominated by the video transfer to the object store.
// Label:
//   - result: "ok" or "error"
var VideoUploadDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "video_upload_duration_seconds",
		Help:      "Duration of lecture creation including the video upload.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	},
	[]string{"result"},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditEventsTotal counts audit events handed to the dispatcher.
// Labels:
//   - action:   the recorded action
//   - resource: the affected resource
var AuditEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_total",
		Help:      "Total number of audit events enqueued for recording.",
	},
	[]string{"action", "resource"},
)
