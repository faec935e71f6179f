package portbind

import (
	"fmt"
	"time"
)

// requirePositive panics if v <= 0 with a descriptive message.
func requirePositive[T int | time.Duration](name string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("portbind: %s must be greater than 0, got %v", name, v))
	}
}

// Option configures a single BindPortWithRetry, IsPortAvailable or
// FindAvailablePort call. Options that do not apply to a call are ignored
// (e.g., WithMaxAttempts for BindPortWithRetry).
//
// With* functions panic on invalid input (empty host, non-positive counts or
// durations). Option values are normally constants, so an invalid value is a
// programmer error rather than a runtime condition.
type Option func(*config)

// WithHost sets the hostname or IP literal to bind. A name that does not
// resolve fails as a bind error, not here.
//
// Default: "localhost".
//
// Panics if host is empty.
func WithHost(host string) Option {
	if host == "" {
		panic("portbind: host must not be empty")
	}
	return func(c *config) {
		c.Host = host
	}
}

// WithMaxRetries sets how many bind attempts BindPortWithRetry makes.
//
// Default: 3.
//
// Panics if n < 1.
func WithMaxRetries(n int) Option {
	requirePositive("max retries", n)
	return func(c *config) {
		c.MaxRetries = n
	}
}

// WithMaxAttempts sets how many consecutive candidate ports
// FindAvailablePort tries, starting at the requested port.
//
// Default: 10.
//
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	requirePositive("max attempts", n)
	return func(c *config) {
		c.MaxAttempts = n
	}
}

// WithProbeTimeout sets the deadline of each individual bind attempt.
//
// Default: 5 seconds.
//
// Panics if d <= 0.
func WithProbeTimeout(d time.Duration) Option {
	requirePositive("probe timeout", d)
	return func(c *config) {
		c.ProbeTimeout = d
	}
}

// WithJitter replaces the random duration added to every backoff delay.
// fn must be safe for concurrent use; negative results count as zero.
// Useful in tests to fix or bound jitter without disabling it.
//
// Default: uniform in [0, MaxJitter).
//
// Panics if fn is nil.
func WithJitter(fn func() time.Duration) Option {
	if fn == nil {
		panic("portbind: jitter function must not be nil")
	}
	return func(c *config) {
		c.Jitter = fn
	}
}
