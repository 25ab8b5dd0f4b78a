package trip

import "time"

// Config is the plain structured form of a breaker's tunables, suitable for
// loading from a configuration file. Durations are in milliseconds and may be
// zero or negative to force immediate expiry.
type Config struct {
	// Identifier labels the breaker in hooks and diagnostics. It plays no
	// part in the breaker's logic.
	Identifier string `json:"identifier" yaml:"identifier"`

	// FailureThreshold is the number of breaking failures within the unstable
	// window that trip the breaker, and the number of qualifying outcomes
	// while Trial that close it. Must be at least 1.
	FailureThreshold int `json:"failure_threshold" yaml:"failure_threshold"`

	// UnstableWindowMillis is the rolling failure window in milliseconds.
	UnstableWindowMillis int64 `json:"unstable_window_duration_millis" yaml:"unstable_window_duration_millis"`

	// UnavailableCooldownMillis is the minimum dwell time in Unavailable, in
	// milliseconds.
	UnavailableCooldownMillis int64 `json:"unavailable_cooldown_duration_millis" yaml:"unavailable_cooldown_duration_millis"`
}

// FromConfig creates a Breaker from a plain Config. Additional options are
// applied on top and may override the Config's fields.
func FromConfig(cfg Config, opts ...Option) (*Breaker, error) {
	base := []Option{
		WithFailureThreshold(cfg.FailureThreshold),
		WithUnstableWindow(time.Duration(cfg.UnstableWindowMillis) * time.Millisecond),
		WithCooldown(time.Duration(cfg.UnavailableCooldownMillis) * time.Millisecond),
	}
	return New(cfg.Identifier, append(base, opts...)...)
}
