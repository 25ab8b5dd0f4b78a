package trip

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Func is the function signature for protected operations.
type Func func(ctx context.Context) error

// Condition determines whether an error counts as a breaking failure.
type Condition func(error) bool

// OnStateChangeFunc is called when the breaker changes state.
type OnStateChangeFunc func(name string, from, to State)

// OnCallFunc is called after each call attempt.
type OnCallFunc func(name string, state State, err error)

// OnRejectFunc is called when a call is rejected because the breaker is
// unavailable.
type OnRejectFunc func(name string)

// ErrUnavailable is returned when the breaker is unavailable and rejecting
// calls. It is the only error the breaker synthesizes; every other error a
// caller sees originates from the wrapped call.
var ErrUnavailable = errors.New("service unavailable")

// IsUnavailable reports whether err is because the breaker rejected the call.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// Default values.
const (
	DefaultFailureThreshold = 5
	DefaultUnstableWindow   = time.Minute
	DefaultCooldown         = 30 * time.Second
)

// Breaker is a four-state circuit breaker. Safe for concurrent use.
type Breaker struct {
	name string
	cfg  config

	mu   sync.Mutex
	snap snapshot
}

// New creates a Breaker with the given options. The failure threshold must be
// at least 1; anything lower is a configuration error.
func New(name string, opts ...Option) (*Breaker, error) {
	cfg := config{
		failureThreshold: DefaultFailureThreshold,
		unstableWindow:   DefaultUnstableWindow,
		cooldown:         DefaultCooldown,
		condition:        defaultCondition,
		clock:            realClock{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.failureThreshold < 1 {
		return nil, fmt.Errorf("trip: failure threshold must be at least 1, got %d", cfg.failureThreshold)
	}
	if cfg.condition == nil {
		return nil, errors.New("trip: condition must not be nil")
	}
	if cfg.clock == nil {
		return nil, errors.New("trip: clock must not be nil")
	}

	b := &Breaker{
		name: name,
		cfg:  cfg,
		snap: healthy{},
	}
	if cfg.startTripped {
		b.snap = unavailable{enteredAt: cfg.clock.Now()}
	}
	return b, nil
}

// Do executes fn with breaker protection. fn runs outside the breaker's
// internal lock, and its result is returned unchanged: the only error Do
// substitutes is ErrUnavailable on a short-circuit.
func (b *Breaker) Do(ctx context.Context, fn Func) error {
	state, err := b.allow()
	if err != nil {
		if b.cfg.onReject != nil {
			b.cfg.onReject(b.name)
		}
		return err
	}

	fnErr := fn(ctx)

	b.record(fnErr)

	if b.cfg.onCall != nil {
		b.cfg.onCall(b.name, state, fnErr)
	}

	return fnErr
}

// State returns the current state. It has no side effects: the transition out
// of Unavailable happens only inside Do, when a call arrives after the
// cooldown has elapsed and becomes the first probe.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snap.state()
}

// Reset manually returns the breaker to Healthy.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replace(healthy{})
}

// Name returns the breaker name.
func (b *Breaker) Name() string {
	return b.name
}

// Counts returns the counters carried by the current state: accumulated
// failures while Unstable, recovery progress while Trial, zero otherwise.
func (b *Breaker) Counts() (failures, progress int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch s := b.snap.(type) {
	case unstable:
		return s.failures, 0
	case trial:
		return 0, s.progress
	}
	return 0, 0
}

func (b *Breaker) allow() (State, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok := b.snap.(unavailable); ok {
		if b.cfg.clock.Now().Sub(s.enteredAt) < b.cfg.cooldown {
			return Unavailable, ErrUnavailable
		}
		// Cooldown elapsed: this call becomes the first probe.
		b.replace(trial{})
	}
	return b.snap.state(), nil
}

func (b *Breaker) record(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.cfg.clock.Now()

	switch s := b.snap.(type) {
	case healthy:
		if err != nil && b.cfg.condition(err) {
			b.replace(b.afterFailures(1, now))
		}

	case unstable:
		switch {
		case err == nil:
			// A success fully heals; it does not merely decrement.
			b.replace(healthy{})
		case !b.cfg.condition(err):
			// Non-breaking failures are invisible here.
		case now.Sub(s.lastFailureAt) >= b.cfg.unstableWindow:
			// Window expired: the count restarts instead of accumulating.
			b.replace(b.afterFailures(1, now))
		default:
			b.replace(b.afterFailures(s.failures+1, now))
		}

	case trial:
		if err != nil && b.cfg.condition(err) {
			// A single breaking failure reopens the breaker, whatever the
			// accumulated progress.
			b.replace(unavailable{enteredAt: now})
			return
		}
		if s.progress+1 >= b.cfg.failureThreshold {
			b.replace(healthy{})
		} else {
			b.replace(trial{progress: s.progress + 1})
		}

	case unavailable:
		// A concurrent failure tripped the breaker while this call was in
		// flight. Its outcome no longer moves the state.
	}
}

// afterFailures returns the snapshot for a breaker that has seen count
// qualifying failures inside the window, tripping once the threshold is met.
func (b *Breaker) afterFailures(count int, now time.Time) snapshot {
	if count >= b.cfg.failureThreshold {
		return unavailable{enteredAt: now}
	}
	return unstable{failures: count, lastFailureAt: now}
}

// replace swaps in the next snapshot. Callers must hold b.mu.
func (b *Breaker) replace(next snapshot) {
	from := b.snap.state()
	b.snap = next

	if to := next.state(); to != from && b.cfg.onStateChange != nil {
		b.cfg.onStateChange(b.name, from, to)
	}
}

func defaultCondition(err error) bool {
	return err != nil
}
