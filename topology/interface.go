package topology

import "context"

// Transport is the broker capability this package consumes. The rabbit
// package provides an AMQP implementation; tests use in-memory fakes.
//
// Implementations own the connection, channel pooling and their concurrency
// contract. Publish must be safe for concurrent use; the declaration
// methods are only called from Apply, which callers serialize.
//
//go:generate mockgen -source=interface.go -destination=mock_transport.go -package=topology
type Transport interface {
	// DeclareExchange declares a direct exchange. Redeclaring an identical
	// exchange is a no-op; a mismatch returns an error wrapping ErrConflict.
	DeclareExchange(ctx context.Context, name string, durable bool) error

	// DeclareQueue declares a queue with the given broker arguments
	// (dead-letter linkage uses DeadLetterExchangeArg and
	// DeadLetterRoutingKeyArg). Same idempotence contract as exchanges.
	DeclareQueue(ctx context.Context, name string, durable bool, args map[string]interface{}) error

	// BindQueue binds queue to exchange under routeKey.
	BindQueue(ctx context.Context, queue, exchange, routeKey string) error

	// Publish sends payload to exchange under routeKey. A non-zero
	// expirationMillis sets the per-message TTL after which the broker
	// dead-letters the message.
	Publish(ctx context.Context, exchange, routeKey string, payload []byte, expirationMillis uint64) error
}

// Logger matches the mqkit logger.Logger method set so any structured
// logger can be plugged in.
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}
