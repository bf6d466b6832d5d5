package publisher

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/queueworks/mqkit/observability"
	"github.com/queueworks/mqkit/topology"
)

type recordedPublish struct {
	Exchange         string
	RouteKey         string
	Payload          []byte
	ExpirationMillis uint64
}

// recordingTransport captures publishes; declarations are not exercised by
// the publisher and fail the test if called.
type recordingTransport struct {
	mu        sync.Mutex
	published []recordedPublish
	failWith  error
}

func (r *recordingTransport) DeclareExchange(context.Context, string, bool) error {
	return errors.New("unexpected DeclareExchange")
}

func (r *recordingTransport) DeclareQueue(context.Context, string, bool, map[string]interface{}) error {
	return errors.New("unexpected DeclareQueue")
}

func (r *recordingTransport) BindQueue(context.Context, string, string, string) error {
	return errors.New("unexpected BindQueue")
}

func (r *recordingTransport) Publish(_ context.Context, exchange, routeKey string, payload []byte, expirationMillis uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.published = append(r.published, recordedPublish{
		Exchange:         exchange,
		RouteKey:         routeKey,
		Payload:          payload,
		ExpirationMillis: expirationMillis,
	})
	return nil
}

func (r *recordingTransport) all() []recordedPublish {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]recordedPublish, len(r.published))
	copy(out, r.published)
	return out
}

type capturingObserver struct {
	mu  sync.Mutex
	ops []observability.OperationContext
}

func (c *capturingObserver) ObserveOperation(op observability.OperationContext) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, op)
}

var taskUnit = topology.Unit{
	Name:     "task",
	Exchange: "ex.task",
	Queue:    "q.task",
	RouteKey: "task",
}

func TestSendPublishesWithoutExpiration(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{}, transport)

	err := pub.Send(context.Background(), taskUnit, []byte("payload"))
	require.NoError(t, err)

	published := transport.all()
	require.Len(t, published, 1)
	assert.Equal(t, "ex.task", published[0].Exchange)
	assert.Equal(t, "task", published[0].RouteKey)
	assert.Equal(t, []byte("payload"), published[0].Payload)
	assert.Zero(t, published[0].ExpirationMillis)
}

func TestSendDelayedConvertsSecondsToMillis(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{}, transport)

	err := pub.SendDelayed(context.Background(), taskUnit, []byte("payload"), 30)
	require.NoError(t, err)

	published := transport.all()
	require.Len(t, published, 1)
	assert.Equal(t, uint64(30000), published[0].ExpirationMillis)
}

func TestSendDelayedWithZeroDelayEqualsSend(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{}, transport)

	require.NoError(t, pub.SendDelayed(context.Background(), taskUnit, []byte("a"), 0))
	require.NoError(t, pub.Send(context.Background(), taskUnit, []byte("a")))

	published := transport.all()
	require.Len(t, published, 2)
	assert.Equal(t, published[1].ExpirationMillis, published[0].ExpirationMillis)
	assert.Zero(t, published[0].ExpirationMillis)
}

func TestSendDelayedRejectsDelayAboveMaximum(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{MaxDelaySeconds: 60}, transport)

	err := pub.SendDelayed(context.Background(), taskUnit, []byte("payload"), 61)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDelay)
	assert.Empty(t, transport.all())

	require.NoError(t, pub.SendDelayed(context.Background(), taskUnit, []byte("payload"), 60))
}

func TestSendDelayedDefaultMaximumIsOneWeek(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{}, transport)

	require.NoError(t, pub.SendDelayed(context.Background(), taskUnit, nil, DefaultMaxDelaySeconds))

	err := pub.SendDelayed(context.Background(), taskUnit, nil, DefaultMaxDelaySeconds+1)
	assert.ErrorIs(t, err, ErrInvalidDelay)
}

func TestSendToPublishesToExplicitTarget(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{}, transport)

	require.NoError(t, pub.SendTo(context.Background(), "ex.audit", "audit", []byte("event")))
	require.NoError(t, pub.SendDelayedTo(context.Background(), "ex.audit", "audit", []byte("event"), 5))

	published := transport.all()
	require.Len(t, published, 2)
	assert.Equal(t, "ex.audit", published[0].Exchange)
	assert.Zero(t, published[0].ExpirationMillis)
	assert.Equal(t, uint64(5000), published[1].ExpirationMillis)
}

func TestSendWrapsTransportError(t *testing.T) {
	cause := errors.New("channel closed")
	transport := &recordingTransport{failWith: cause}
	pub := NewPublisher(Config{}, transport)

	err := pub.Send(context.Background(), taskUnit, []byte("payload"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ex.task")
}

func TestObserverSeesProduceOperations(t *testing.T) {
	transport := &recordingTransport{}
	obs := &capturingObserver{}
	pub := NewPublisher(Config{}, transport).WithObserver(obs)

	require.NoError(t, pub.Send(context.Background(), taskUnit, []byte("abc")))
	require.NoError(t, pub.SendDelayed(context.Background(), taskUnit, []byte("abc"), 10))

	require.Len(t, obs.ops, 2)
	assert.Equal(t, "publisher", obs.ops[0].Component)
	assert.Equal(t, "produce", obs.ops[0].Operation)
	assert.Equal(t, "ex.task", obs.ops[0].Resource)
	assert.Equal(t, "task", obs.ops[0].SubResource)
	assert.Equal(t, int64(3), obs.ops[0].Size)
	assert.NoError(t, obs.ops[0].Error)
	assert.Empty(t, obs.ops[0].Metadata)
	assert.Equal(t, "true", obs.ops[1].Metadata["delayed"])
}

func TestObserverSeesFailedProduce(t *testing.T) {
	cause := errors.New("connection reset")
	transport := &recordingTransport{failWith: cause}
	obs := &capturingObserver{}
	pub := NewPublisher(Config{}, transport).WithObserver(obs)

	err := pub.Send(context.Background(), taskUnit, []byte("abc"))
	require.Error(t, err)
	require.Len(t, obs.ops, 1)
	assert.ErrorIs(t, obs.ops[0].Error, cause)
}

func TestConcurrentSendsAllArrive(t *testing.T) {
	transport := &recordingTransport{}
	pub := NewPublisher(Config{}, transport)

	const senders = 16
	const perSender = 25

	var g errgroup.Group
	for i := 0; i < senders; i++ {
		i := i
		g.Go(func() error {
			for j := 0; j < perSender; j++ {
				payload := []byte(fmt.Sprintf("%d-%d", i, j))
				if err := pub.SendDelayed(context.Background(), taskUnit, payload, uint32(j%3)); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Len(t, transport.all(), senders*perSender)
}
