package topology

// StepKind discriminates the declaration steps of a Plan.
type StepKind int

const (
	DeclareExchange StepKind = iota
	DeclareQueue
	BindQueue
)

// String returns the operation name used in logs and observability events.
func (k StepKind) String() string {
	switch k {
	case DeclareExchange:
		return "declare_exchange"
	case DeclareQueue:
		return "declare_queue"
	case BindQueue:
		return "bind_queue"
	default:
		return "unknown"
	}
}

// Step is one declaration in a Plan. Which fields are set depends on Kind:
// exchange steps carry Exchange, queue steps carry Queue and Args, binding
// steps carry Queue, Exchange and RouteKey.
type Step struct {
	Kind     StepKind
	Exchange string
	Queue    string
	RouteKey string

	// Args are broker-level queue arguments. For units with a dead-letter
	// target they hold the target's exchange and routing key.
	Args map[string]interface{}
}

// Plan is the ordered sequence of declarations derived from a Registry:
// all exchanges first (deduplicated, in first-registration order), then all
// queues, then all bindings. Every entity a binding references is therefore
// declared by an earlier step.
type Plan struct {
	Steps []Step
}
