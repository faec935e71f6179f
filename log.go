package portbind

import (
	"log/slog"

	"github.com/giantswarm/portbind/internal/core"
)

// SetLogger replaces the package-level logger used by portbind.
// The provided logger should already have any desired attributes; portbind
// only adds per-event attributes such as port, host, attempt and delay.
//
// Retry attempts and backoff delays are logged at debug level; terminal
// failures of BindPortWithRetry and FindAvailablePort at warn level.
//
// If l is nil, the logger resets to the default: slog.Default() with a
// "component" attribute, re-derived on the next use and then cached.
// SetLogger is safe to call concurrently with other portbind operations.
//
// Example:
//
//	portbind.SetLogger(myLogger.With("component", "portbind"))
func SetLogger(l *slog.Logger) {
	core.SetLogger(l)
}
