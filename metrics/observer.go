package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/queueworks/mqkit/observability"
)

// Observer translates broker operations into Prometheus metrics. It
// implements observability.Observer and can be attached to the topology
// applier and the publisher.
type Observer struct {
	operations *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	sizes      *prometheus.HistogramVec
}

// NewObserver creates and registers the broker operation metrics on the
// metrics registry. Call it once per Metrics instance; registering twice
// panics on duplicate collectors, as is usual for Prometheus.
func (m *Metrics) NewObserver() *Observer {
	obs := &Observer{
		operations: createCounterVec(
			m.namespace,
			"broker_operations_total",
			"Broker operations by component, operation, resource and status.",
			[]string{"component", "operation", "resource", "status"},
		),
		durations: createHistogramVec(
			m.namespace,
			"broker_operation_duration_seconds",
			"Broker operation latency.",
			[]string{"component", "operation"},
			prometheus.DefBuckets,
		),
		sizes: createHistogramVec(
			m.namespace,
			"broker_message_bytes",
			"Published message payload size in bytes.",
			[]string{"component", "operation"},
			prometheus.ExponentialBuckets(64, 4, 8),
		),
	}

	m.Registry.MustRegister(obs.operations, obs.durations, obs.sizes)
	return obs
}

// ObserveOperation records one operation outcome.
func (o *Observer) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}

	o.operations.WithLabelValues(op.Component, op.Operation, op.Resource, status).Inc()
	o.durations.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())
	if op.Size > 0 {
		o.sizes.WithLabelValues(op.Component, op.Operation).Observe(float64(op.Size))
	}
}
