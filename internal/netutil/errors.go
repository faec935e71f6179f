package netutil

import (
	"fmt"
	"time"

	"github.com/giantswarm/portbind/internal/sentinel"
)

// Sentinel errors for a single probe. BindError and TimeoutError match
// ErrBind and ErrTimeout respectively via errors.Is.
const (
	// ErrInvalidPort indicates a port outside [MinPort, MaxPort].
	ErrInvalidPort = sentinel.Error("invalid port")

	// ErrBind indicates the operating system refused the bind.
	ErrBind = sentinel.Error("bind failed")

	// ErrTimeout indicates the bind did not resolve before the probe deadline.
	ErrTimeout = sentinel.Error("bind timed out")
)

// BindError reports that the operating system rejected a bind on Host:Port
// (address in use, permission denied, unresolvable or non-local address).
// Err is the underlying error from the net package or the caller's context.
type BindError struct {
	Port int
	Host string
	Err  error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("bind tcp %s: %v", Address(e.Host, e.Port), e.Err)
}

// Unwrap returns the underlying OS error.
func (e *BindError) Unwrap() error { return e.Err }

// Is reports whether target is ErrBind.
func (e *BindError) Is(target error) bool { return target == ErrBind }

// TimeoutError reports that a bind on Host:Port produced no outcome within
// Timeout. The socket, if it is ever opened, is closed in the background.
type TimeoutError struct {
	Port    int
	Host    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("bind tcp %s: no result within %s", Address(e.Host, e.Port), e.Timeout)
}

// Is reports whether target is ErrTimeout.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }
