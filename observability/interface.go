package observability

import "time"

// OperationContext describes a single completed operation reported by an
// mqkit package. Not every field is meaningful for every operation; unused
// fields are left at their zero value.
type OperationContext struct {
	// Component is the reporting package, e.g. "publisher" or "topology".
	Component string

	// Operation names what was done, e.g. "produce" or "declare_queue".
	Operation string

	// Resource is the primary entity the operation acted on
	// (exchange name for publishes, exchange/queue name for declarations).
	Resource string

	// SubResource qualifies the resource, e.g. the routing key of a publish.
	SubResource string

	// Duration is how long the operation took, including the broker round trip.
	Duration time.Duration

	// Error is the failure, if any. Nil on success.
	Error error

	// Size is the payload size in bytes for operations that carry one.
	Size int64

	// Metadata carries operation-specific extras, e.g. the delay of a
	// delayed publish.
	Metadata map[string]string
}

// Observer receives operation reports. Implementations must be safe for
// concurrent use; ObserveOperation is called from publish paths.
type Observer interface {
	ObserveOperation(op OperationContext)
}
