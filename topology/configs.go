package topology

// Broker-level queue arguments attached to units with a dead-letter target.
// The broker republishes expired or rejected messages to the named exchange
// with the named routing key.
const (
	DeadLetterExchangeArg   = "x-dead-letter-exchange"
	DeadLetterRoutingKeyArg = "x-dead-letter-routing-key"
)

// Unit is the declarative definition of one routing unit: a durable direct
// exchange, a durable queue, and the routing key binding them.
//
// Units are registered once and are immutable afterwards. A topology is
// configuration, not compiled constants, so one process can hold several
// registries for several brokers or vhosts.
type Unit struct {
	// Name uniquely identifies the unit inside its Registry.
	Name string `yaml:"name"`

	// Exchange is the exchange the unit publishes to and binds from.
	// Several units may share one exchange; it is declared once.
	Exchange string `yaml:"exchange"`

	// Queue is the queue bound to the exchange.
	Queue string `yaml:"queue"`

	// RouteKey is the binding key between Queue and Exchange. Exchanges are
	// direct, so a message reaches the queue only on an exact key match.
	RouteKey string `yaml:"route_key"`

	// DeadLetter optionally names an already registered unit. Messages that
	// expire or are rejected in this unit's queue are republished by the
	// broker to that unit's exchange with that unit's routing key.
	DeadLetter string `yaml:"dead_letter"`
}
