// Package topology models broker routing topologies as data.
//
// A topology is a set of routing units. Each Unit names one exchange, one
// queue, the routing key binding them, and optionally the unit that expired
// or rejected messages should be dead-lettered to. Units are collected in a
// Registry, which validates them as they are registered and turns the whole
// set into an ordered declaration Plan:
//
//	reg := topology.NewRegistry()
//	_ = reg.Register(topology.Unit{Name: "task", Exchange: "ex.task", Queue: "q.task", RouteKey: "task"})
//	_ = reg.Register(topology.Unit{Name: "task.dead", Exchange: "ex.dead", Queue: "q.dead", RouteKey: "dead"})
//	_ = reg.Register(topology.Unit{Name: "task.ttl", Exchange: "ex.ttl", Queue: "q.ttl", RouteKey: "ttl",
//		DeadLetter: "task.dead"})
//
//	plan := reg.Build()
//	err := topology.NewApplier(transport).Apply(ctx, plan)
//
// The Applier issues the plan's declarations against a Transport, the
// minimal broker capability this package depends on. Apply is idempotent
// against a broker that already holds matching declarations; a declaration
// that conflicts with live broker state surfaces as an error wrapping
// ErrConflict, carrying the index of the failing step.
//
// Registries are meant to be built once at startup, before any Apply or
// publish call. After Build they are read-only and safe to share across
// goroutines.
package topology
