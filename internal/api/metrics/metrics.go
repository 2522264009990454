// Package metrics defines and registers all custom Prometheus metrics for
// the employee portal. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionsActive tracks the number of sessions currently held in the
// in-memory store. Not populated for the Redis backend, where expiry is
// server-side.
var SessionsActive = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Current number of sessions held in the memory store.",
	},
)

// CustomerMutationsTotal counts create/update/delete calls on customer
// records.
// Labels:
//   - op: "create", "update", or "delete"
//   - result: "ok", "duplicate_policy", "not_found", or "error"
var CustomerMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "customer_mutations_total",
		Help:      "Total number of customer mutations, by operation and result.",
	},
	[]string{"op", "result"},
)
