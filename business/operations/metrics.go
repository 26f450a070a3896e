package operations

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	InsightsGeneratedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intelligence_insights_generated_total",
			Help: "Count of insights produced by generation passes, by insight type.",
		},
		[]string{"type"},
	)

	ActionsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intelligence_actions_created_total",
			Help: "Count of new actions persisted after dedup, by action type.",
		},
		[]string{"action_type"},
	)

	ActionTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "intelligence_action_transitions_total",
			Help: "Count of action status changes, by target status.",
		},
		[]string{"status"},
	)

	OrdersRecordedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "intelligence_orders_recorded_total",
		Help: "Total orders ingested through the service.",
	})

	SystemHealth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "intelligence_system_health",
		Help: "System health score from the last metrics roll-up (0-100).",
	})

	RefreshDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "intelligence_refresh_duration_seconds",
		Help:    "Latency of a full generation pass including persistence.",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(
		InsightsGeneratedTotal,
		ActionsCreatedTotal,
		ActionTransitionsTotal,
		OrdersRecordedTotal,
		SystemHealth,
		RefreshDuration,
	)
}
