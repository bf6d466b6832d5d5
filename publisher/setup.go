package publisher

import (
	"github.com/queueworks/mqkit/observability"
	"github.com/queueworks/mqkit/topology"
)

// Logger defines the interface for logging operations in the publisher
// package. This interface allows the package to use any logging
// implementation that conforms to these methods.
//
//go:generate mockgen -source=setup.go -destination=mock_logger.go -package=publisher
type Logger interface {
	Info(msg string, err error, fields ...map[string]interface{})
	Debug(msg string, err error, fields ...map[string]interface{})
	Warn(msg string, err error, fields ...map[string]interface{})
	Error(msg string, err error, fields ...map[string]interface{})
	Fatal(msg string, err error, fields ...map[string]interface{})
}

// Publisher sends messages through a topology.Transport. It is stateless
// apart from its configuration and collaborator references, and therefore
// safe for concurrent use.
type Publisher struct {
	cfg       Config
	transport topology.Transport
	logger    Logger
	observer  observability.Observer
}

// NewPublisher creates a publisher over the given transport. Attach
// optional dependencies with WithLogger and WithObserver.
func NewPublisher(cfg Config, transport topology.Transport) *Publisher {
	return &Publisher{cfg: cfg, transport: transport}
}

// WithLogger attaches a logger for publish events. Returns the publisher
// for chaining.
func (p *Publisher) WithLogger(logger Logger) *Publisher {
	p.logger = logger
	return p
}

// WithObserver attaches an observability sink. Returns the publisher for
// chaining.
func (p *Publisher) WithObserver(obs observability.Observer) *Publisher {
	p.observer = obs
	return p
}

func (p *Publisher) logInfo(msg string, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, nil, fields)
	}
}

func (p *Publisher) logError(msg string, err error, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.Error(msg, err, fields)
	}
}
