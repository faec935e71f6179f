package portbind

import "time"

// ConfigSnapshot holds a copy of config fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	Host         string
	MaxRetries   int
	MaxAttempts  int
	ProbeTimeout time.Duration
	Jitter       func() time.Duration
}

// ApplyOptionsForTesting creates a default config, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := newConfig(opts)
	return ConfigSnapshot{
		Host:         cfg.Host,
		MaxRetries:   cfg.MaxRetries,
		MaxAttempts:  cfg.MaxAttempts,
		ProbeTimeout: cfg.ProbeTimeout,
		Jitter:       cfg.Jitter,
	}
}
