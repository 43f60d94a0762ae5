package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envmon_state_transitions_total",
		Help: "Total state machine transitions by source and target state",
	}, []string{"from", "to"})

	CurrentState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "envmon_current_state",
		Help: "1 for the active state, 0 otherwise",
	}, []string{"state"})

	AccessAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envmon_access_attempts_total",
		Help: "Total credential submissions by outcome",
	}, []string{"outcome"})

	Lockouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "envmon_lockouts_total",
		Help: "Total access lockouts",
	})

	SensorFaults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envmon_sensor_faults_total",
		Help: "Total invalid sensor readings by sensor",
	}, []string{"sensor"})

	CriticalHoldDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "envmon_critical_hold_duration_seconds",
		Help:    "Time spent blocked in the alarm critical section",
		Buckets: []float64{1, 5, 15, 60, 300, 900, 3600},
	})

	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "envmon_tick_duration_seconds",
		Help:    "Duration of one state machine tick",
		Buckets: prometheus.DefBuckets,
	})

	BridgeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envmon_bridge_errors_total",
		Help: "Total IO bridge failures by command",
	}, []string{"command"})

	ScenarioSteps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envmon_scenario_steps_total",
		Help: "Total scenario steps by result",
	}, []string{"result"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "envmon_events_published_total",
		Help: "Total events published by topic",
	}, []string{"topic"})

	EventSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "envmon_event_subscriptions_total",
		Help: "Current number of active event subscriptions",
	})
)
