package portbind

import (
	"context"

	"github.com/giantswarm/portbind/internal/core"
)

var _ Binder = (*binderWrapper)(nil)

// binderWrapper adapts core.Binder to the Binder interface.
//
// The core.Binder is stored as a named (unexported) field rather than
// embedded so callers cannot reach internal methods through type assertions.
type binderWrapper struct {
	b *core.Binder
}

func (w *binderWrapper) BindPortWithRetry(ctx context.Context, port int) error {
	return w.b.Bind(ctx, port)
}

func (w *binderWrapper) IsPortAvailable(ctx context.Context, port int) bool {
	return w.b.Available(ctx, port)
}

func (w *binderWrapper) FindAvailablePort(ctx context.Context, startPort int) (int, error) {
	return w.b.Scan(ctx, startPort)
}

// New returns a Binder configured by opts. It performs no I/O.
//
// Panics if any option receives an invalid value. See individual With*
// functions for constraints.
//
//nolint:ireturn // Returns Binder interface by design for testability (mockable).
func New(opts ...Option) Binder {
	return &binderWrapper{b: core.NewBinder(newConfig(opts).toCoreConfig())}
}

// BindPortWithRetry binds port on the configured host (default "localhost")
// and releases it, retrying up to WithMaxRetries times (default 3) with
// exponential backoff and jitter. It returns nil on the first successful bind.
//
// Errors:
//   - ErrInvalidPort for a port outside [1, 65535]; returned before any
//     socket is created.
//   - the last attempt's *BindError or *TimeoutError when all attempts fail.
//   - ctx.Err() joined with the last attempt's error when ctx is done during
//     a backoff wait.
//
// The port is released when BindPortWithRetry returns and is not reserved
// for the caller.
func BindPortWithRetry(ctx context.Context, port int, opts ...Option) error {
	return New(opts...).BindPortWithRetry(ctx, port)
}

// IsPortAvailable reports whether a single bind of port on the configured
// host succeeds right now. It never returns an error: out-of-range ports and
// all bind failures report false.
//
// The result can be stale by the time the caller acts on it. Do not base a
// later bind decision on it; use BindPortWithRetry or your own listener.
func IsPortAvailable(ctx context.Context, port int, opts ...Option) bool {
	return New(opts...).IsPortAvailable(ctx, port)
}

// FindAvailablePort returns the lowest port in
// [startPort, startPort+n-1] that binds on the configured host, where n is
// set by WithMaxAttempts (default 10). Each candidate gets exactly one
// attempt with no backoff.
//
// Errors:
//   - ErrInvalidPort if startPort is outside [1, 65535].
//   - a *ScanError matching ErrPortRangeExceeded when the scan reaches a
//     candidate above 65535. Lower candidates are still tried first.
//   - a *ScanError matching ErrNoAvailablePort, naming the range, when no
//     candidate binds.
func FindAvailablePort(ctx context.Context, startPort int, opts ...Option) (int, error) {
	return New(opts...).FindAvailablePort(ctx, startPort)
}
