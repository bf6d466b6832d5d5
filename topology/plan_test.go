package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOrdersExchangesQueuesBindings(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Unit{Name: "order", Exchange: "ex.order", Queue: "q.order", RouteKey: "order"}))
	require.NoError(t, reg.Register(Unit{Name: "order.dead", Exchange: "ex.dead", Queue: "q.dead", RouteKey: "dead"}))
	require.NoError(t, reg.Register(Unit{
		Name: "order.ttl", Exchange: "ex.ttl", Queue: "q.ttl", RouteKey: "ttl",
		DeadLetter: "order.dead",
	}))

	plan := reg.Build()
	require.Len(t, plan.Steps, 9)

	var exchanges []string
	for _, s := range plan.Steps[:3] {
		require.Equal(t, DeclareExchange, s.Kind)
		exchanges = append(exchanges, s.Exchange)
	}
	assert.Equal(t, []string{"ex.order", "ex.dead", "ex.ttl"}, exchanges)

	var queues []string
	for _, s := range plan.Steps[3:6] {
		require.Equal(t, DeclareQueue, s.Kind)
		queues = append(queues, s.Queue)
	}
	assert.Equal(t, []string{"q.order", "q.dead", "q.ttl"}, queues)

	// Only the TTL queue carries the dead-letter linkage, pointing at the
	// target unit's exchange and routing key.
	assert.Nil(t, plan.Steps[3].Args)
	assert.Nil(t, plan.Steps[4].Args)
	assert.Equal(t, map[string]interface{}{
		DeadLetterExchangeArg:   "ex.dead",
		DeadLetterRoutingKeyArg: "dead",
	}, plan.Steps[5].Args)

	for i, s := range plan.Steps[6:] {
		require.Equal(t, BindQueue, s.Kind, "step %d", 6+i)
	}
	assert.Equal(t, Step{Kind: BindQueue, Queue: "q.ttl", Exchange: "ex.ttl", RouteKey: "ttl"}, plan.Steps[8])
}

func TestBuildDeduplicatesSharedExchanges(t *testing.T) {
	reg := NewRegistry()
	a := Unit{Name: "a", Exchange: "ex.shared", Queue: "q.a", RouteKey: "a"}
	b := Unit{Name: "b", Exchange: "ex.shared", Queue: "q.b", RouteKey: "b"}
	require.NoError(t, reg.Register(a))
	require.NoError(t, reg.Register(b))

	plan := reg.Build()
	require.Len(t, plan.Steps, 5)
	assert.Equal(t, DeclareExchange, plan.Steps[0].Kind)
	assert.Equal(t, "ex.shared", plan.Steps[0].Exchange)
	assert.Equal(t, DeclareQueue, plan.Steps[1].Kind)
}

// Every entity a binding references must be declared by an earlier step,
// whatever the registration order.
func TestBuildTopologicalOrder(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Unit{Name: "dead", Exchange: "ex.dead", Queue: "q.dead", RouteKey: "dead"}))
	require.NoError(t, reg.Register(Unit{Name: "a", Exchange: "ex.a", Queue: "q.a", RouteKey: "a", DeadLetter: "dead"}))
	require.NoError(t, reg.Register(Unit{Name: "b", Exchange: "ex.a", Queue: "q.b", RouteKey: "b", DeadLetter: "a"}))
	require.NoError(t, reg.Register(Unit{Name: "c", Exchange: "ex.c", Queue: "q.c", RouteKey: "c"}))

	plan := reg.Build()

	declaredExchanges := map[string]bool{}
	declaredQueues := map[string]bool{}
	for i, s := range plan.Steps {
		switch s.Kind {
		case DeclareExchange:
			declaredExchanges[s.Exchange] = true
		case DeclareQueue:
			declaredQueues[s.Queue] = true
		case BindQueue:
			assert.True(t, declaredExchanges[s.Exchange], "step %d binds undeclared exchange %q", i, s.Exchange)
			assert.True(t, declaredQueues[s.Queue], "step %d binds undeclared queue %q", i, s.Queue)
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(Unit{Name: "dead", Exchange: "ex.dead", Queue: "q.dead", RouteKey: "dead"}))
	require.NoError(t, reg.Register(Unit{Name: "ttl", Exchange: "ex.ttl", Queue: "q.ttl", RouteKey: "ttl", DeadLetter: "dead"}))

	assert.Equal(t, reg.Build(), reg.Build())
}
