package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeFulfilled = "fulfilled"
	OutcomeRejected  = "rejected"
)

var (
	namespace = "dispatch_store"

	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Settled store operations by resource, kind and outcome",
		},
		[]string{"resource", "kind", "outcome"},
	)

	operationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Rejected store operations by resource and error kind",
		},
		[]string{"resource", "error_kind"},
	)

	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time from request to settlement of a store operation",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"resource", "kind"},
	)

	operationsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operations_in_flight",
			Help:      "Store operations currently waiting on the backend",
		},
		[]string{"resource", "kind"},
	)
)

// OperationStarted marks an operation as in flight.
func OperationStarted(resource, kind string) {
	operationsInFlight.WithLabelValues(resource, kind).Inc()
}

// OperationSettled records the outcome and latency of an operation.
// errorKind is ignored for fulfilled operations.
func OperationSettled(resource, kind, outcome, errorKind string, elapsed time.Duration) {
	operationsInFlight.WithLabelValues(resource, kind).Dec()
	operationsTotal.WithLabelValues(resource, kind, outcome).Inc()
	operationDuration.WithLabelValues(resource, kind).Observe(elapsed.Seconds())
	if outcome == OutcomeRejected {
		operationErrors.WithLabelValues(resource, errorKind).Inc()
	}
}
