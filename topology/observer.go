package topology

import (
	"time"

	"github.com/queueworks/mqkit/observability"
)

// observeStep notifies the observer about a declaration step if one is
// configured.
func (a *Applier) observeStep(step Step, duration time.Duration, err error) {
	if a.observer == nil {
		return
	}

	resource := step.Exchange
	if step.Kind == DeclareQueue {
		resource = step.Queue
	}

	a.observer.ObserveOperation(observability.OperationContext{
		Component:   "topology",
		Operation:   step.Kind.String(),
		Resource:    resource,
		SubResource: step.RouteKey,
		Duration:    duration,
		Error:       err,
	})
}
