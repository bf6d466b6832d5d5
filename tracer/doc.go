// Package tracer provides distributed tracing using OpenTelemetry.
//
// It wraps the OpenTelemetry SDK behind a small API for creating spans,
// recording errors, attaching attributes, and propagating trace context
// across service boundaries via W3C Trace Context carriers.
//
// Basic Usage:
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "task-scheduler",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "declare-topology")
//	defer span.End()
//
// NewObserver returns an observability.Observer that turns observed broker
// operations into spans, so topology declaration and publishing show up in
// traces without any instrumentation at the call sites:
//
//	applier := topology.NewApplier(transport).WithObserver(tracerClient.NewObserver())
//
// The FXModule provides the client through dependency injection and shuts
// the provider down when the application stops.
package tracer
