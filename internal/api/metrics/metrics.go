// Package metrics defines and registers all custom Prometheus metrics for
// the taskboard API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// package load; the echoprometheus middleware adds the HTTP-level series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "weak_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success", "password_mismatch", "weak_password", "username_taken", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// StaleSessionsClearedTotal counts sessions invalidated because their user id
// no longer resolved to an existing account.
var StaleSessionsClearedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stale_sessions_cleared_total",
		Help:      "Total number of sessions cleared due to a dangling user reference.",
	},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksCreatedTotal counts tasks created through the add operation. Silent
// no-ops on blank text are not counted.
var TasksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created.",
	},
)

// TaskMutationsTotal counts toggle and delete operations.
// Labels:
//   - op: "toggle" or "delete"
//   - result: "ok" or "not_found" (missing and not-owned are one bucket)
var TaskMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "task_mutations_total",
		Help:      "Total number of task toggle/delete operations, by outcome.",
	},
	[]string{"op", "result"},
)
