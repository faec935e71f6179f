package portbind

import (
	"github.com/giantswarm/portbind/internal/core"
	"github.com/giantswarm/portbind/internal/netutil"
)

// Sentinel errors for error inspection with errors.Is.
// These are immutable constants safe for use in wrapped error chain comparison.
const (
	// ErrInvalidPort is returned when a port is outside [1, 65535]. No socket
	// is created and nothing is retried.
	ErrInvalidPort = netutil.ErrInvalidPort

	// ErrBind is matched by every *BindError: the operating system refused
	// the bind (address in use, permission denied, invalid address).
	ErrBind = netutil.ErrBind

	// ErrTimeout is matched by every *TimeoutError: a single bind attempt did
	// not resolve within the probe timeout.
	ErrTimeout = netutil.ErrTimeout

	// ErrPortRangeExceeded is returned by FindAvailablePort when the scan
	// reaches a candidate above 65535. The scan does not wrap.
	ErrPortRangeExceeded = core.ErrPortRangeExceeded

	// ErrNoAvailablePort is returned by FindAvailablePort when every
	// candidate in the range failed.
	ErrNoAvailablePort = core.ErrNoAvailablePort

	// ErrUnknownBind is returned by BindPortWithRetry if the retry loop ends
	// without success and without a recorded error.
	ErrUnknownBind = core.ErrUnknownBind
)

// Structured errors. Use errors.As to read the port, host and cause.
type (
	// BindError carries the OS error of a rejected bind.
	BindError = netutil.BindError

	// TimeoutError reports a bind attempt that exceeded the probe timeout.
	TimeoutError = netutil.TimeoutError

	// ScanError reports a failed FindAvailablePort, naming the scanned range.
	ScanError = core.ScanError
)
