// Package rabbit implements the RabbitMQ transport behind the topology and
// publisher packages.
//
// The Transport manages a single connection and channel, supports plain
// AMQP, server-authenticated TLS and mutual TLS, and reconnects
// automatically when the connection drops. It implements topology.Transport:
// durable direct exchanges, durable queues with dead-letter arguments,
// bindings, and persistent publishes with an optional per-message TTL.
//
// Basic Usage:
//
//	transport, err := rabbit.NewTransport(rabbit.Config{
//		Connection: rabbit.Connection{
//			Host: "localhost", Port: 5672,
//			User: "guest", Password: "guest",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer transport.GracefulShutdown()
//	go transport.RetryConnection(cfg)
//
//	applier := topology.NewApplier(transport)
//	pub := publisher.NewPublisher(publisher.Config{}, transport)
//
// Broker errors are translated into package-level sentinels; declaration
// mismatches surface as topology.ErrConflict.
//
// The FXModule wires the same pieces through dependency injection: it
// provides the transport, binds it to the topology.Transport interface, and
// runs the reconnection loop for the application's lifetime.
package rabbit
