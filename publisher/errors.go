package publisher

import "errors"

// ErrInvalidDelay is returned when a delayed send exceeds the configured
// maximum delay. Transport failures are returned as-is; retry policy is
// the caller's decision.
var ErrInvalidDelay = errors.New("invalid delay")
