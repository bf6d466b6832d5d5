package rabbit

import (
	"context"

	"go.uber.org/fx"

	"github.com/queueworks/mqkit/topology"
)

// FXModule is an fx.Module that provides and configures the RabbitMQ
// transport. It provides the *Transport, exposes it as topology.Transport
// for the topology applier and the publisher, and registers lifecycle hooks
// for the reconnection loop and graceful shutdown.
//
// Usage:
//
//	app := fx.New(
//	    rabbit.FXModule,
//	    fx.Provide(func() rabbit.Config {
//	        return loadRabbitConfig()
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("rabbit",
	fx.Provide(
		NewTransportWithDI,
		func(t *Transport) topology.Transport { return t },
	),
	fx.Invoke(RegisterTransportLifecycle),
)

// TransportParams groups the dependencies needed to create a Transport.
type TransportParams struct {
	fx.In

	Config Config
	Logger Logger `optional:"true"`
}

// NewTransportWithDI constructs a Transport from injected dependencies.
func NewTransportWithDI(params TransportParams) (*Transport, error) {
	transport, err := NewTransport(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Logger != nil {
		transport.WithLogger(params.Logger)
	}

	return transport, nil
}

// TransportLifecycleParams groups the dependencies needed for transport
// lifecycle management.
type TransportLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Transport *Transport
	Config    Config
}

// RegisterTransportLifecycle starts the reconnection loop when the
// application starts and shuts the transport down when it stops.
func RegisterTransportLifecycle(params TransportLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go params.Transport.RetryConnection(params.Config)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Transport.GracefulShutdown()
			return nil
		},
	})
}
