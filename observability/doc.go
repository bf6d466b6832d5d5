// Package observability defines the hooks mqkit packages use to report
// their operations to an external sink.
//
// Packages in this module never depend on a concrete metrics or tracing
// backend. Instead they accept an Observer and call ObserveOperation with
// an OperationContext describing what happened. The metrics and tracer
// packages ship ready-made Observer implementations; applications can also
// provide their own.
//
// Example:
//
//	type logObserver struct{}
//
//	func (logObserver) ObserveOperation(op observability.OperationContext) {
//		log.Printf("%s.%s on %s took %s (err=%v)",
//			op.Component, op.Operation, op.Resource, op.Duration, op.Error)
//	}
package observability
