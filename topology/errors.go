package topology

import (
	"errors"
	"fmt"
)

// Registration and apply errors. All registration errors are detected
// before any broker call is made and should be treated as fatal to startup.
var (
	// ErrInvalidUnit is returned when a unit is missing its name, exchange,
	// queue or routing key.
	ErrInvalidUnit = errors.New("invalid routing unit")

	// ErrDuplicateName is returned when a unit's name is already registered.
	ErrDuplicateName = errors.New("duplicate unit name")

	// ErrUnknownDeadLetterTarget is returned when a unit references a
	// dead-letter target that has not been registered yet. Targets must be
	// registered before the units that point at them.
	ErrUnknownDeadLetterTarget = errors.New("unknown dead-letter target")

	// ErrCyclicDeadLetterChain is returned when following dead-letter
	// references from a unit leads back to that unit.
	ErrCyclicDeadLetterChain = errors.New("cyclic dead-letter chain")

	// ErrConflict is returned (wrapped) by transports when a declaration
	// does not match an entity already live on the broker. It signals that
	// the topology definition drifted from broker state and is fatal: the
	// process should not accept traffic on a topology it could not apply.
	ErrConflict = errors.New("conflicting declaration")
)

// ApplyError reports the first declaration step that failed while applying
// a plan. Earlier steps were issued against the broker and are not rolled
// back; the broker remains the source of truth for what succeeded.
type ApplyError struct {
	// Step is the zero-based index of the failed step in Plan.Steps.
	Step int

	// Err is the underlying transport error.
	Err error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("topology apply failed at step %d: %v", e.Step, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }
