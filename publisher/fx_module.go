package publisher

import (
	"go.uber.org/fx"

	"github.com/queueworks/mqkit/observability"
	"github.com/queueworks/mqkit/topology"
)

// FXModule provides the publisher to an fx application. The transport is
// required; logger and observer are optional.
var FXModule = fx.Module("publisher",
	fx.Provide(NewPublisherWithDI),
)

// Params declares the dependencies fx injects into the publisher.
type Params struct {
	fx.In

	Config    Config
	Transport topology.Transport
	Logger    Logger                 `optional:"true"`
	Observer  observability.Observer `optional:"true"`
}

// NewPublisherWithDI constructs a publisher from injected dependencies.
func NewPublisherWithDI(p Params) *Publisher {
	pub := NewPublisher(p.Config, p.Transport)
	if p.Logger != nil {
		pub.WithLogger(p.Logger)
	}
	if p.Observer != nil {
		pub.WithObserver(p.Observer)
	}
	return pub
}
