// Package metrics exposes Prometheus metrics for broker operations.
//
// NewMetrics builds a dedicated registry and an HTTP server serving it.
// NewObserver registers counters and histograms for operation counts,
// latency and payload size, and returns an observability.Observer that the
// topology applier and the publisher accept via WithObserver.
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "task-scheduler"})
//	obs := m.NewObserver()
//	pub := publisher.NewPublisher(publisher.Config{}, transport).WithObserver(obs)
//
// The FXModule wires the same pieces through dependency injection and runs
// the HTTP server for the application's lifetime.
package metrics
