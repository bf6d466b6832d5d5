package rabbit

import (
	"context"
	"strconv"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeclareExchange declares a durable direct exchange. Redeclaring an
// existing exchange with the same attributes is a no-op on the broker.
func (t *Transport) DeclareExchange(ctx context.Context, name string, durable bool) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.mu.RLock()
	err := t.channel.ExchangeDeclare(
		name,
		amqp.ExchangeDirect,
		durable,
		false, // AutoDelete
		false, // Internal
		false, // NoWait
		nil,   // Arguments
	)
	t.mu.RUnlock()

	return translateError(err)
}

// DeclareQueue declares a durable queue with the given arguments, typically
// the dead-letter arguments produced by the topology planner. Redeclaring a
// queue with different arguments fails with a conflict.
func (t *Transport) DeclareQueue(ctx context.Context, name string, durable bool, args map[string]interface{}) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.mu.RLock()
	_, err := t.channel.QueueDeclare(
		name,
		durable,
		false,            // AutoDelete
		false,            // Exclusive
		false,            // NoWait
		amqp.Table(args), // Arguments including dead letter config
	)
	t.mu.RUnlock()

	return translateError(err)
}

// BindQueue binds a queue to an exchange under a routing key.
func (t *Transport) BindQueue(ctx context.Context, queue, exchange, routeKey string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.mu.RLock()
	err := t.channel.QueueBind(
		queue,
		routeKey,
		exchange,
		false, // NoWait
		nil,   // Arguments
	)
	t.mu.RUnlock()

	return translateError(err)
}

// Publish sends a persistent message to the exchange under the routing key.
// A non-zero expirationMillis sets the per-message TTL; the broker
// dead-letters the message when it expires in a queue that carries
// dead-letter arguments.
func (t *Transport) Publish(ctx context.Context, exchange, routeKey string, payload []byte, expirationMillis uint64) error {
	publishing := amqp.Publishing{
		ContentType:  t.cfg.Publish.contentType(),
		DeliveryMode: amqp.Persistent,
		Body:         payload,
	}
	if expirationMillis > 0 {
		// The AMQP expiration property is a string of milliseconds.
		publishing.Expiration = strconv.FormatUint(expirationMillis, 10)
	}

	t.mu.RLock()
	err := t.channel.PublishWithContext(ctx,
		exchange,
		routeKey,
		false, // Mandatory
		false, // Immediate
		publishing,
	)
	t.mu.RUnlock()

	return translateError(err)
}
