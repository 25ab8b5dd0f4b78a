package trip

import "time"

type config struct {
	failureThreshold int
	unstableWindow   time.Duration
	cooldown         time.Duration
	condition        Condition
	clock            Clock
	startTripped     bool

	onStateChange OnStateChangeFunc
	onCall        OnCallFunc
	onReject      OnRejectFunc
}

// Option configures a Breaker.
type Option func(*config)

// WithFailureThreshold sets how many breaking failures within the unstable
// window trip the breaker, and how many qualifying outcomes while Trial close
// it again. Default is 5.
func WithFailureThreshold(n int) Option {
	return func(c *config) {
		c.failureThreshold = n
	}
}

// WithUnstableWindow sets the rolling window within which breaking failures
// accumulate toward the threshold. A failure landing after the window has
// expired restarts the count at 1. A zero or negative window expires
// instantly. Default is 1 minute.
func WithUnstableWindow(d time.Duration) Option {
	return func(c *config) {
		c.unstableWindow = d
	}
}

// WithCooldown sets the minimum time the breaker stays unavailable before a
// call may probe again. A zero or negative cooldown elapses immediately.
// Default is 30 seconds.
func WithCooldown(d time.Duration) Option {
	return func(c *config) {
		c.cooldown = d
	}
}

// If sets the condition that determines whether an error counts as a breaking
// failure. By default, any non-nil error is breaking.
func If(cond Condition) Option {
	return func(c *config) {
		c.condition = cond
	}
}

// IfNot sets a condition where matching errors are NOT counted as breaking.
// This is equivalent to If(Not(cond)).
func IfNot(cond Condition) Option {
	return If(Not(cond))
}

// Not inverts a condition.
func Not(cond Condition) Condition {
	return func(err error) bool {
		return !cond(err)
	}
}

// WithClock sets the clock for time operations. Useful for testing.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// StartTripped constructs the breaker already unavailable, with the cooldown
// starting at construction time. Useful for warm restarts and tests.
func StartTripped() Option {
	return func(c *config) {
		c.startTripped = true
	}
}

// OnStateChange sets a hook called when the breaker changes state.
func OnStateChange(fn OnStateChangeFunc) Option {
	return func(c *config) {
		c.onStateChange = fn
	}
}

// OnCall sets a hook called after each call attempt.
func OnCall(fn OnCallFunc) Option {
	return func(c *config) {
		c.onCall = fn
	}
}

// OnReject sets a hook called when a call is rejected because the breaker is
// unavailable.
func OnReject(fn OnRejectFunc) Option {
	return func(c *config) {
		c.onReject = fn
	}
}
