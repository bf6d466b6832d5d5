package topology

import "fmt"

// Registry collects the routing units of one application topology and
// validates them as they arrive. Register and Build are expected to run
// once at startup, single-threaded; after that the registry is effectively
// immutable and safe to share across concurrent readers.
type Registry struct {
	units map[string]Unit
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[string]Unit)}
}

// Register adds a unit to the registry. It fails, leaving the registry
// unchanged, when the unit is incomplete, its name is already taken, its
// dead-letter target is not registered yet, or its dead-letter chain loops
// back to the unit itself.
func (r *Registry) Register(u Unit) error {
	if u.Name == "" || u.Exchange == "" || u.Queue == "" || u.RouteKey == "" {
		return fmt.Errorf("%w: name, exchange, queue and route key are required", ErrInvalidUnit)
	}
	if _, ok := r.units[u.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, u.Name)
	}
	if u.DeadLetter != "" {
		if u.DeadLetter == u.Name {
			return fmt.Errorf("%w: %q is its own dead-letter target", ErrCyclicDeadLetterChain, u.Name)
		}
		if _, ok := r.units[u.DeadLetter]; !ok {
			return fmt.Errorf("%w: unit %q references %q; targets must be registered first",
				ErrUnknownDeadLetterTarget, u.Name, u.DeadLetter)
		}
		// Units are immutable once registered, so a longer loop can only
		// form through the unit being added. Walk the chain to reject it.
		for target := u.DeadLetter; target != ""; {
			if target == u.Name {
				return fmt.Errorf("%w: chain from %q revisits it", ErrCyclicDeadLetterChain, u.Name)
			}
			next, ok := r.units[target]
			if !ok {
				break
			}
			target = next.DeadLetter
		}
	}

	r.units[u.Name] = u
	r.order = append(r.order, u.Name)
	return nil
}

// Lookup returns the unit registered under name.
func (r *Registry) Lookup(name string) (Unit, bool) {
	u, ok := r.units[name]
	return u, ok
}

// Units returns all registered units in registration order.
func (r *Registry) Units() []Unit {
	units := make([]Unit, 0, len(r.order))
	for _, name := range r.order {
		units = append(units, r.units[name])
	}
	return units
}

// Build derives the declaration plan from the registered units. It is a
// pure function of the registry: deterministic, no broker calls. Exchanges
// appear once each in first-registration order, queues and bindings in
// registration order.
func (r *Registry) Build() Plan {
	steps := make([]Step, 0, 3*len(r.order))

	declared := make(map[string]bool, len(r.order))
	for _, name := range r.order {
		u := r.units[name]
		if declared[u.Exchange] {
			continue
		}
		declared[u.Exchange] = true
		steps = append(steps, Step{Kind: DeclareExchange, Exchange: u.Exchange})
	}

	for _, name := range r.order {
		u := r.units[name]
		var args map[string]interface{}
		if u.DeadLetter != "" {
			target := r.units[u.DeadLetter]
			args = map[string]interface{}{
				DeadLetterExchangeArg:   target.Exchange,
				DeadLetterRoutingKeyArg: target.RouteKey,
			}
		}
		steps = append(steps, Step{Kind: DeclareQueue, Queue: u.Queue, Args: args})
	}

	for _, name := range r.order {
		u := r.units[name]
		steps = append(steps, Step{Kind: BindQueue, Queue: u.Queue, Exchange: u.Exchange, RouteKey: u.RouteKey})
	}

	return Plan{Steps: steps}
}
