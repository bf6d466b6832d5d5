package topology

import (
	"context"
	"fmt"
	"time"

	"github.com/queueworks/mqkit/observability"
)

// Applier walks a Plan and issues its declarations against a Transport.
//
// Apply is meant to run once per process lifetime (or once per topology
// version) and must not run concurrently with itself against the same
// transport: declaration order matters. Callers serialize Apply invocations.
type Applier struct {
	transport Transport
	logger    Logger
	observer  observability.Observer
}

// NewApplier creates an applier over the given transport. Attach optional
// dependencies with WithLogger and WithObserver.
func NewApplier(transport Transport) *Applier {
	return &Applier{transport: transport}
}

// WithLogger attaches a logger for declaration events. Returns the applier
// for chaining.
func (a *Applier) WithLogger(logger Logger) *Applier {
	a.logger = logger
	return a
}

// WithObserver attaches an observability sink. Returns the applier for
// chaining.
func (a *Applier) WithObserver(obs observability.Observer) *Applier {
	a.observer = obs
	return a
}

// Apply issues every step of the plan in order. On the first failure it
// stops and returns an *ApplyError carrying the index of the failed step;
// earlier steps are not rolled back. Re-running Apply with the same plan
// against a broker that already holds matching declarations succeeds:
// identical redeclarations are broker-level no-ops. A redeclaration that
// mismatches live broker state fails with an error wrapping ErrConflict.
func (a *Applier) Apply(ctx context.Context, plan Plan) error {
	for i, step := range plan.Steps {
		start := time.Now()
		err := a.applyStep(ctx, step)
		a.observeStep(step, time.Since(start), err)

		if err != nil {
			a.logError("failed to apply topology step", err, map[string]interface{}{
				"step":      i,
				"operation": step.Kind.String(),
				"exchange":  step.Exchange,
				"queue":     step.Queue,
			})
			return &ApplyError{Step: i, Err: err}
		}
	}

	a.logInfo("topology applied", map[string]interface{}{
		"steps": len(plan.Steps),
	})
	return nil
}

func (a *Applier) applyStep(ctx context.Context, step Step) error {
	switch step.Kind {
	case DeclareExchange:
		return a.transport.DeclareExchange(ctx, step.Exchange, true)
	case DeclareQueue:
		return a.transport.DeclareQueue(ctx, step.Queue, true, step.Args)
	case BindQueue:
		return a.transport.BindQueue(ctx, step.Queue, step.Exchange, step.RouteKey)
	default:
		return fmt.Errorf("unknown step kind %d", step.Kind)
	}
}

func (a *Applier) logInfo(msg string, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Info(msg, nil, fields)
	}
}

func (a *Applier) logError(msg string, err error, fields map[string]interface{}) {
	if a.logger != nil {
		a.logger.Error(msg, err, fields)
	}
}
