package topology

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queueworks/mqkit/observability"
)

// fakeTransport is an in-memory Transport modelling broker declaration
// semantics: identical redeclarations are no-ops, mismatched queue
// arguments conflict. failAtCall (zero-based, counted across all calls)
// injects a failure.
type fakeTransport struct {
	mu        sync.Mutex
	calls     []string
	exchanges map[string]bool
	queues    map[string]map[string]interface{}

	failAtCall int
	failErr    error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		exchanges:  make(map[string]bool),
		queues:     make(map[string]map[string]interface{}),
		failAtCall: -1,
	}
}

func (f *fakeTransport) record(call string) error {
	f.calls = append(f.calls, call)
	if f.failAtCall >= 0 && len(f.calls)-1 == f.failAtCall {
		return f.failErr
	}
	return nil
}

func (f *fakeTransport) DeclareExchange(_ context.Context, name string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("declare_exchange " + name); err != nil {
		return err
	}
	f.exchanges[name] = true
	return nil
}

func (f *fakeTransport) DeclareQueue(_ context.Context, name string, _ bool, args map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("declare_queue " + name); err != nil {
		return err
	}
	if existing, ok := f.queues[name]; ok {
		if !reflect.DeepEqual(existing, args) {
			return fmt.Errorf("%w: inequivalent args for queue %q", ErrConflict, name)
		}
		return nil
	}
	f.queues[name] = args
	return nil
}

func (f *fakeTransport) BindQueue(_ context.Context, queue, exchange, routeKey string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("bind " + queue + " " + exchange + " " + routeKey)
}

func (f *fakeTransport) Publish(_ context.Context, exchange, routeKey string, _ []byte, _ uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.record("publish " + exchange + " " + routeKey)
}

// testObserver collects operation reports.
type testObserver struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

func (o *testObserver) ObserveOperation(op observability.OperationContext) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.ops = append(o.ops, op)
}

func (o *testObserver) operations() []observability.OperationContext {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]observability.OperationContext{}, o.ops...)
}

func ttlRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	require.NoError(t, reg.Register(Unit{Name: "task", Exchange: "ex.task", Queue: "q.task", RouteKey: "task"}))
	require.NoError(t, reg.Register(Unit{Name: "task.dead", Exchange: "ex.dead", Queue: "q.dead", RouteKey: "dead"}))
	require.NoError(t, reg.Register(Unit{
		Name: "task.ttl", Exchange: "ex.ttl", Queue: "q.ttl", RouteKey: "ttl",
		DeadLetter: "task.dead",
	}))
	return reg
}

func TestApplyIssuesStepsInPlanOrder(t *testing.T) {
	transport := newFakeTransport()
	plan := ttlRegistry(t).Build()

	require.NoError(t, NewApplier(transport).Apply(context.Background(), plan))

	assert.Equal(t, []string{
		"declare_exchange ex.task",
		"declare_exchange ex.dead",
		"declare_exchange ex.ttl",
		"declare_queue q.task",
		"declare_queue q.dead",
		"declare_queue q.ttl",
		"bind q.task ex.task task",
		"bind q.dead ex.dead dead",
		"bind q.ttl ex.ttl ttl",
	}, transport.calls)

	assert.Equal(t, map[string]interface{}{
		DeadLetterExchangeArg:   "ex.dead",
		DeadLetterRoutingKeyArg: "dead",
	}, transport.queues["q.ttl"])
}

func TestApplyIsIdempotent(t *testing.T) {
	transport := newFakeTransport()
	plan := ttlRegistry(t).Build()
	applier := NewApplier(transport)

	require.NoError(t, applier.Apply(context.Background(), plan))
	require.NoError(t, applier.Apply(context.Background(), plan))
}

func TestApplyStopsAtFirstFailure(t *testing.T) {
	transport := newFakeTransport()
	transport.failAtCall = 3 // first queue declaration
	transport.failErr = errors.New("channel closed")

	plan := ttlRegistry(t).Build()
	err := NewApplier(transport).Apply(context.Background(), plan)

	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, 3, applyErr.Step)

	// Steps 0-3 attempted, step 4 onward never issued.
	assert.Len(t, transport.calls, 4)
}

func TestApplyReportsConflict(t *testing.T) {
	transport := newFakeTransport()
	// Live broker state from an older topology version: q.ttl without the
	// dead-letter linkage.
	transport.queues["q.ttl"] = nil

	plan := ttlRegistry(t).Build()
	err := NewApplier(transport).Apply(context.Background(), plan)

	var applyErr *ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, 5, applyErr.Step)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestApplyEmitsObserverEvents(t *testing.T) {
	transport := newFakeTransport()
	obs := &testObserver{}
	plan := ttlRegistry(t).Build()

	require.NoError(t, NewApplier(transport).WithObserver(obs).Apply(context.Background(), plan))

	ops := obs.operations()
	require.Len(t, ops, len(plan.Steps))
	assert.Equal(t, "topology", ops[0].Component)
	assert.Equal(t, "declare_exchange", ops[0].Operation)
	assert.Equal(t, "ex.task", ops[0].Resource)
	assert.Equal(t, "declare_queue", ops[3].Operation)
	assert.Equal(t, "q.task", ops[3].Resource)
	assert.Equal(t, "bind_queue", ops[6].Operation)
	assert.Equal(t, "task", ops[6].SubResource)
}
