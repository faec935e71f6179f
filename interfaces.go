package portbind

import "context"

// Binder is the port-claiming API bound to one set of options. The
// package-level functions are shorthand for New(opts...).Method(...).
//
// A Binder holds only immutable configuration and is safe for concurrent
// use. Depend on this interface to substitute a fake in tests.
type Binder interface {
	// BindPortWithRetry binds and releases port, retrying with backoff.
	// See the package-level BindPortWithRetry for error semantics.
	BindPortWithRetry(ctx context.Context, port int) error

	// IsPortAvailable reports whether one bind of port succeeds right now.
	// Diagnostics only: the answer is stale on return.
	IsPortAvailable(ctx context.Context, port int) bool

	// FindAvailablePort returns the lowest bindable port of the configured
	// range starting at startPort.
	FindAvailablePort(ctx context.Context, startPort int) (int, error)
}
