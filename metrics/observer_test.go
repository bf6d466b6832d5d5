package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queueworks/mqkit/observability"
)

func TestObserverCountsOperationsByStatus(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	obs := m.NewObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "topology",
		Operation: "declare_queue",
		Resource:  "q.task",
		Duration:  5 * time.Millisecond,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "topology",
		Operation: "declare_queue",
		Resource:  "q.task",
		Duration:  5 * time.Millisecond,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "topology",
		Operation: "declare_queue",
		Resource:  "q.task",
		Duration:  5 * time.Millisecond,
		Error:     errors.New("precondition failed"),
	})

	success := obs.operations.WithLabelValues("topology", "declare_queue", "q.task", "success")
	failure := obs.operations.WithLabelValues("topology", "declare_queue", "q.task", "error")
	assert.Equal(t, float64(2), testutil.ToFloat64(success))
	assert.Equal(t, float64(1), testutil.ToFloat64(failure))
}

func TestObserverRecordsPayloadSizeOnlyWhenPresent(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	obs := m.NewObserver()

	obs.ObserveOperation(observability.OperationContext{
		Component: "publisher",
		Operation: "produce",
		Resource:  "ex.task",
		Duration:  time.Millisecond,
		Size:      512,
	})
	obs.ObserveOperation(observability.OperationContext{
		Component: "topology",
		Operation: "bind_queue",
		Resource:  "ex.task",
		Duration:  time.Millisecond,
	})

	count, err := testutil.GatherAndCount(m.Registry, "broker_message_bytes")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetricsDefaultsAddress(t *testing.T) {
	m := NewMetrics(Config{})
	assert.Equal(t, DefaultMetricsAddress, m.Server.Addr)
}
