package publisher

import (
	"context"
	"time"

	"github.com/queueworks/mqkit/observability"
)

// observeProduce runs fn and reports the publish to the observer, if one
// is attached.
func (p *Publisher) observeProduce(_ context.Context, msg Message, fn func() error) error {
	if p.observer == nil {
		return fn()
	}

	start := time.Now()
	err := fn()

	op := observability.OperationContext{
		Component:   "publisher",
		Operation:   "produce",
		Resource:    msg.Exchange,
		SubResource: msg.RouteKey,
		Duration:    time.Since(start),
		Error:       err,
		Size:        int64(len(msg.Payload)),
	}
	if msg.ExpirationMillis > 0 {
		op.Metadata = map[string]string{"delayed": "true"}
	}
	p.observer.ObserveOperation(op)
	return err
}
