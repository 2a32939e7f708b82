// Package observability holds the Prometheus collectors of the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OpList     = "list"
	OpEnroll   = "enroll"
	OpWithdraw = "withdraw"

	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

var (
	operationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clubs",
		Subsystem: "roster",
		Name:      "operations_total",
		Help:      "Roster operations by operation and outcome.",
	}, []string{"operation", "outcome"})
	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "clubs",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of participants per activity.",
	}, []string{"activity"})
	subscribersGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "clubs",
		Subsystem: "feed",
		Name:      "subscribers",
		Help:      "Live roster feed subscribers.",
	})
	droppedEvents = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "clubs",
		Subsystem: "feed",
		Name:      "dropped_events_total",
		Help:      "Events a subscriber could not accept.",
	})
)

func init() {
	prometheus.MustRegister(operationsTotal, participantsGauge, subscribersGauge, droppedEvents)
}

// RecordOperation counts one roster operation.
func RecordOperation(op, outcome string) {
	operationsTotal.WithLabelValues(op, outcome).Inc()
}

// SetParticipants updates the roster size gauge of an activity.
func SetParticipants(activity string, n int) {
	participantsGauge.WithLabelValues(activity).Set(float64(n))
}

func SetSubscribers(n int) {
	subscribersGauge.Set(float64(n))
}

func RecordDroppedEvent() {
	droppedEvents.Inc()
}
