package core

import (
	"fmt"

	"github.com/giantswarm/portbind/internal/netutil"
	"github.com/giantswarm/portbind/internal/sentinel"
)

// Sentinel errors for retry and scan failures. Callers match these with
// errors.Is through wrapped chains. Probe-level sentinels (ErrInvalidPort,
// ErrBind, ErrTimeout) live in netutil.
const (
	// ErrPortRangeExceeded is returned by Scan when a candidate port would
	// exceed netutil.MaxPort.
	ErrPortRangeExceeded = sentinel.Error("port range exceeded")

	// ErrNoAvailablePort is returned by Scan when every candidate failed.
	ErrNoAvailablePort = sentinel.Error("no available port")

	// ErrUnknownBind is returned by Bind if the retry loop ends without
	// success and without a recorded attempt error.
	ErrUnknownBind = sentinel.Error("bind failed for unknown reason")
)

// ScanError reports a failed Scan on Host. Start and End delimit the
// scanned range (inclusive); End never exceeds netutil.MaxPort+1. For ErrPortRangeExceeded, Port is the first
// candidate above netutil.MaxPort; for ErrNoAvailablePort, Last carries the
// error of the final candidate probed.
type ScanError struct {
	Host  string
	Start int
	End   int
	Port  int
	Err   error
	Last  error
}

func (e *ScanError) Error() string {
	if e.Err == ErrPortRangeExceeded {
		return fmt.Sprintf("scan %s ports %d-%d: candidate %d exceeds %d: %v",
			e.Host, e.Start, e.End, e.Port, netutil.MaxPort, e.Err)
	}
	if e.Last != nil {
		return fmt.Sprintf("scan %s ports %d-%d: %v (last: %v)", e.Host, e.Start, e.End, e.Err, e.Last)
	}
	return fmt.Sprintf("scan %s ports %d-%d: %v", e.Host, e.Start, e.End, e.Err)
}

// Unwrap returns the sentinel describing the failure.
func (e *ScanError) Unwrap() error { return e.Err }
