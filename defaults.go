package portbind

import (
	"github.com/giantswarm/portbind/internal/backoff"
	"github.com/giantswarm/portbind/internal/netutil"
)

// Default configuration values. They are exported so callers can build
// custom settings relative to them (e.g., 2 * DefaultProbeTimeout).
const (
	// DefaultHost is the host bound when WithHost is not given.
	DefaultHost = "localhost"

	// DefaultMaxRetries is the number of bind attempts BindPortWithRetry
	// makes before returning the last error.
	DefaultMaxRetries = 3

	// DefaultMaxAttempts is the number of consecutive candidate ports
	// FindAvailablePort tries.
	DefaultMaxAttempts = 10

	// DefaultProbeTimeout bounds each individual bind attempt.
	DefaultProbeTimeout = netutil.DefaultProbeTimeout

	// MinPort and MaxPort bound valid port numbers.
	MinPort = netutil.MinPort
	MaxPort = netutil.MaxPort
)

// Backoff between retries is min(100ms * 2^(attempt-1), 1s) plus a uniformly
// random jitter in [0, 50ms). The jitter source can be replaced with WithJitter.
const (
	BaseRetryDelay = backoff.DefaultBase
	MaxRetryDelay  = backoff.DefaultCap
	MaxJitter      = backoff.DefaultMaxJitter
)
