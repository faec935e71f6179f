package portbind

import "github.com/giantswarm/portbind/internal/core"

// config holds the settings for one call. This unexported type wraps
// core.Config via embedding, keeping internal/core types out of the public
// API signature while avoiding field-by-field duplication.
type config struct {
	core.Config
}

// toCoreConfig returns the embedded core.Config.
func (c config) toCoreConfig() core.Config {
	return c.Config
}

// defaultConfig returns a config populated with all default values.
func defaultConfig() config {
	return config{core.Config{
		Host:         DefaultHost,
		MaxRetries:   DefaultMaxRetries,
		MaxAttempts:  DefaultMaxAttempts,
		ProbeTimeout: DefaultProbeTimeout,
	}}
}

// newConfig applies opts to the defaults.
func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
