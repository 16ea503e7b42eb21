// Package metrics defines and registers all custom Prometheus metrics for the
// Insider game API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "insider"

// ActionsTotal counts game actions that completed successfully.
// Label:
//   - action: the action verb (e.g. "JOIN", "ASSIGN_ROLES")
var ActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Total number of game actions successfully applied.",
	},
	[]string{"action"},
)

// ActionErrorsTotal counts rejected game actions.
// Labels:
//   - action: the action verb
//   - reason: "invalid_input", "invalid_state", or "internal"
var ActionErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_errors_total",
		Help:      "Total number of game actions rejected, by reason.",
	},
	[]string{"action", "reason"},
)

// GamesCreatedTotal counts games created since process start.
var GamesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_created_total",
		Help:      "Total number of games created.",
	},
)

// TrackActiveGames registers a gauge reporting the number of live games.
// Call once at startup with the registry's counter.
func TrackActiveGames(count func() int) {
	promauto.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "games_active",
			Help:      "Number of games currently held in the registry.",
		},
		func() float64 { return float64(count()) },
	)
}
