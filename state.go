package trip

import "time"

// State represents the circuit breaker state.
type State int

const (
	// Healthy is the normal operating state. Calls flow through.
	Healthy State = iota

	// Unstable means recent breaking failures are accumulating toward the
	// threshold. Calls still flow through.
	Unstable

	// Unavailable is the tripped state. Calls are rejected immediately until
	// the cooldown elapses.
	Unavailable

	// Trial is the recovery probing state. Calls flow through and qualifying
	// outcomes count toward closing the breaker.
	Trial
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Healthy:
		return "healthy"
	case Unstable:
		return "unstable"
	case Unavailable:
		return "unavailable"
	case Trial:
		return "trial"
	default:
		return "unknown"
	}
}

// snapshot is the breaker's state at a single instant. Each variant carries
// only the data its state needs. Snapshots are immutable: a transition swaps
// in a whole new value, never updates fields in place.
type snapshot interface {
	state() State
}

type healthy struct{}

type unstable struct {
	failures      int
	lastFailureAt time.Time
}

type unavailable struct {
	enteredAt time.Time
}

type trial struct {
	progress int
}

func (healthy) state() State     { return Healthy }
func (unstable) state() State    { return Unstable }
func (unavailable) state() State { return Unavailable }
func (trial) state() State       { return Trial }
