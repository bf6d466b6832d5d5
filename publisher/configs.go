package publisher

// DefaultMaxDelaySeconds bounds delayed sends when Config.MaxDelaySeconds
// is unset: one week, comfortably above any sane per-message TTL while
// still catching unit mix-ups (milliseconds passed as seconds, negative
// values cast to uint32, and the like).
const DefaultMaxDelaySeconds uint32 = 7 * 24 * 60 * 60

// Config holds the publisher's local settings. The broker enforces the
// actual expiry; MaxDelaySeconds is only a sanity bound applied before the
// message leaves the process.
type Config struct {
	// MaxDelaySeconds is the largest delay SendDelayed and SendDelayedTo
	// accept. Zero means DefaultMaxDelaySeconds.
	MaxDelaySeconds uint32 `yaml:"max_delay_seconds" envconfig:"PUBLISHER_MAX_DELAY_SECONDS"`
}

func (c Config) maxDelaySeconds() uint32 {
	if c.MaxDelaySeconds == 0 {
		return DefaultMaxDelaySeconds
	}
	return c.MaxDelaySeconds
}
