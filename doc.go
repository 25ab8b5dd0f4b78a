// Package trip implements a four-state circuit breaker for resilient
// distributed systems.
//
// trip protects callers and downstream services from cascading failures by:
//
//   - Windowed Failure Tracking: breaking failures inside a rolling window
//     trip the breaker
//   - Fast Rejection: an unavailable breaker rejects calls immediately
//     without load
//   - Gradual Recovery: a trial phase probes whether the service has
//     recovered
//   - Lifecycle Hooks: OnStateChange, OnCall, OnReject for observability
//
// The core package depends only on the standard library; integrations with
// gRPC, net/http, zap and Prometheus live in the tripgrpc, triphttp, tripzap
// and tripprom subpackages.
//
// # Quick Start
//
// Create a breaker and protect calls:
//
//	b, err := trip.New("payment-service")
//	if err != nil {
//	    return err
//	}
//
//	err = b.Do(ctx, func(ctx context.Context) error {
//	    return client.Charge(ctx, amount)
//	})
//	if trip.IsUnavailable(err) {
//	    return handleFallback()
//	}
//
// For functions that return values, use the generic Run helper:
//
//	user, err := trip.Run(ctx, b, func(ctx context.Context) (*User, error) {
//	    return client.GetUser(ctx, id)
//	})
//
// # Breaker States
//
// The breaker has four states:
//
//	Healthy (normal):
//	    - Calls flow through to the protected function
//	    - A breaking failure moves the breaker to Unstable
//
//	Unstable (degrading):
//	    - Calls still flow through
//	    - Breaking failures inside the unstable window accumulate;
//	      reaching the threshold makes the breaker Unavailable
//	    - A failure landing after the window expired restarts the count
//	    - A single success heals the breaker back to Healthy
//
//	Unavailable (tripped):
//	    - Calls are rejected immediately with ErrUnavailable
//	    - Once the cooldown elapses, the next call probes the service
//	      and the breaker enters Trial
//
//	Trial (probing):
//	    - Calls flow through; successes and non-breaking failures count
//	      toward recovery
//	    - Reaching the threshold closes the breaker back to Healthy
//	    - A single breaking failure makes it Unavailable again
//
// # Configuration
//
// Configure thresholds and timing with options:
//
//	b, err := trip.New("api",
//	    trip.WithFailureThreshold(5),            // trip after 5 failures in the window
//	    trip.WithUnstableWindow(time.Minute),    // failures must land within 1m of each other
//	    trip.WithCooldown(30*time.Second),       // wait 30s before probing
//	)
//
// Default values:
//
//   - FailureThreshold: 5
//   - UnstableWindow: 1 minute
//   - Cooldown: 30 seconds
//
// Both durations may be zero or negative, which makes them expire instantly:
// a non-positive window means the failure count perpetually restarts, and a
// non-positive cooldown means the first call after tripping always probes.
//
// For configuration loaded from files, the same tunables are available as a
// plain record with json/yaml tags:
//
//	b, err := trip.FromConfig(trip.Config{
//	    Identifier:                "api",
//	    FailureThreshold:          5,
//	    UnstableWindowMillis:      60_000,
//	    UnavailableCooldownMillis: 30_000,
//	})
//
// # Failure Conditions
//
// By default, any non-nil error is a breaking failure. Customize this with If:
//
//	// Only count specific errors as breaking
//	b, err := trip.New("api",
//	    trip.If(func(err error) bool {
//	        return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnreachable)
//	    }),
//	)
//
// Use IfNot to exclude certain errors:
//
//	// Don't count 404s as breaking
//	b, err := trip.New("api",
//	    trip.IfNot(func(err error) bool {
//	        return errors.Is(err, ErrNotFound)
//	    }),
//	)
//
// Non-breaking failures are always returned to the caller unchanged, but the
// breaker does not count them against its health while Healthy or Unstable.
// While Trial they count toward recovery exactly like successes.
//
// # Lifecycle Hooks
//
// Hooks provide observability without coupling the core to a logger or
// metrics system:
//
//	b, err := trip.New("service",
//	    trip.OnStateChange(func(name string, from, to trip.State) {
//	        logger.Info("breaker state change", "breaker", name, "from", from, "to", to)
//	    }),
//	    trip.OnReject(func(name string) {
//	        metrics.Increment("breaker.rejected", "breaker:"+name)
//	    }),
//	)
//
// Ready-made hooks backed by zap and Prometheus are provided by the tripzap
// and tripprom subpackages.
//
// # Fallback Pattern
//
// Use IsUnavailable to detect short-circuits and provide fallback behavior:
//
//	user, err := trip.Run(ctx, b, func(ctx context.Context) (*User, error) {
//	    return client.GetUser(ctx, id)
//	})
//	if trip.IsUnavailable(err) {
//	    return getCachedUser(id) // fallback to cache
//	}
//
// # Manual Control
//
// Reset returns the breaker to Healthy, for admin endpoints or after
// deploying a fix:
//
//	b.Reset()
//
// StartTripped constructs a breaker that is already unavailable, for warm
// restarts where the downstream is known to be down:
//
//	b, err := trip.New("api", trip.StartTripped())
//
// # Inspecting State
//
// Query the breaker's current status:
//
//	state := b.State()             // Healthy, Unstable, Unavailable, or Trial
//	name := b.Name()               // the breaker's identifier
//	failures, progress := b.Counts()
//
// State is read-only: the transition out of Unavailable happens only when a
// call probes through Do.
//
// # Testing
//
// Inject a fake clock to control time in tests:
//
//	type fakeClock struct {
//	    now time.Time
//	}
//
//	func (c *fakeClock) Now() time.Time          { return c.now }
//	func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
//
//	clock := &fakeClock{now: time.Now()}
//	b, err := trip.New("test",
//	    trip.WithFailureThreshold(1),
//	    trip.WithCooldown(30*time.Second),
//	    trip.WithClock(clock),
//	)
package trip
