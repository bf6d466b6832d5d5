package publisher

import (
	"context"
	"fmt"

	"github.com/queueworks/mqkit/topology"
)

// Send publishes payload immediately to the unit's exchange under its
// route key.
func (p *Publisher) Send(ctx context.Context, unit topology.Unit, payload []byte) error {
	return p.publish(ctx, unit.Exchange, unit.RouteKey, payload, 0)
}

// SendDelayed publishes payload to the unit's exchange with a per-message
// TTL of delaySeconds. Once the TTL elapses the broker dead-letters the
// message to the unit's dead-letter target. A delay of zero is equivalent
// to Send.
func (p *Publisher) SendDelayed(ctx context.Context, unit topology.Unit, payload []byte, delaySeconds uint32) error {
	return p.publish(ctx, unit.Exchange, unit.RouteKey, payload, delaySeconds)
}

// SendTo publishes payload to an explicit exchange and route key, for
// targets that are not modeled as registered units.
func (p *Publisher) SendTo(ctx context.Context, exchange, routeKey string, payload []byte) error {
	return p.publish(ctx, exchange, routeKey, payload, 0)
}

// SendDelayedTo is SendDelayed for an explicit exchange and route key.
func (p *Publisher) SendDelayedTo(ctx context.Context, exchange, routeKey string, payload []byte, delaySeconds uint32) error {
	return p.publish(ctx, exchange, routeKey, payload, delaySeconds)
}

func (p *Publisher) publish(ctx context.Context, exchange, routeKey string, payload []byte, delaySeconds uint32) error {
	if maxDelay := p.cfg.maxDelaySeconds(); delaySeconds > maxDelay {
		return fmt.Errorf("%w: delay %ds exceeds maximum %ds", ErrInvalidDelay, delaySeconds, maxDelay)
	}

	msg := newMessage(exchange, routeKey, payload, delaySeconds)

	err := p.observeProduce(ctx, msg, func() error {
		return p.transport.Publish(ctx, msg.Exchange, msg.RouteKey, msg.Payload, msg.ExpirationMillis)
	})
	if err != nil {
		p.logError("failed to publish message", err, map[string]interface{}{
			"exchange":  exchange,
			"route_key": routeKey,
		})
		return fmt.Errorf("failed to publish message to exchange %q: %w", exchange, err)
	}

	fields := map[string]interface{}{
		"exchange":  exchange,
		"route_key": routeKey,
		"bytes":     len(payload),
	}
	if delaySeconds > 0 {
		fields["delay_seconds"] = delaySeconds
	}
	p.logInfo("published message", fields)
	return nil
}
