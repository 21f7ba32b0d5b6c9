// Package metrics defines and registers all custom Prometheus metrics for the
// NorthStar goals API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "northstar"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created.",
	},
)

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid" (bad credentials), or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// GoalMutationsTotal counts goal write operations.
// Label:
//   - action: "create", "update", or "delete"
var GoalMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "goal_mutations_total",
		Help:      "Total number of goal create/update/delete operations.",
	},
	[]string{"action"},
)
