package rabbit

import (
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/queueworks/mqkit/topology"
)

// Standardized errors returned by the transport. They abstract away the
// underlying AMQP error codes so callers can handle failures without
// depending on the amqp091 package.
var (
	// ErrConnectionFailed is returned when connection to RabbitMQ cannot be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrNotFound is returned when an exchange or queue doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied is returned when access is denied to a resource
	ErrAccessDenied = errors.New("access denied")

	// ErrResourceLocked is returned when a queue is locked by another connection
	ErrResourceLocked = errors.New("resource locked")

	// ErrChannelClosed is returned when the channel was closed by the broker
	ErrChannelClosed = errors.New("channel closed")
)

// translateError converts AMQP-specific errors into the standardized errors
// above. A PRECONDITION_FAILED response, which the broker sends when a
// declaration does not match the existing object's attributes, maps to
// topology.ErrConflict so the applier's callers see one conflict error
// regardless of transport. Unknown errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var amqpErr *amqp.Error
	if !errors.As(err, &amqpErr) {
		if errors.Is(err, amqp.ErrClosed) {
			return ErrChannelClosed
		}
		return err
	}

	switch amqpErr.Code {
	case amqp.PreconditionFailed:
		return topology.ErrConflict
	case amqp.NotFound:
		return ErrNotFound
	case amqp.AccessRefused:
		return ErrAccessDenied
	case amqp.ResourceLocked:
		return ErrResourceLocked
	case amqp.ChannelError, amqp.ConnectionForced:
		return ErrChannelClosed
	default:
		return err
	}
}
