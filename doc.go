// Package portbind claims a free local TCP port without a
// time-of-check-to-time-of-use race.
//
// There is no "is it free?" check followed by a bind. Each attempt is a
// single real listen call, atomic in the kernel, that is released right away.
// Failed attempts are retried with capped exponential backoff plus jitter, and
// a sequential scanner finds the first bindable port in a range.
//
// # Basic Usage
//
//	import "github.com/giantswarm/portbind"
//
//	ctx := context.Background()
//
//	if err := portbind.BindPortWithRetry(ctx, 8080); err != nil {
//	    log.Fatal(err) // *portbind.BindError or *portbind.TimeoutError
//	}
//
//	port, err := portbind.FindAvailablePort(ctx, 3000,
//	    portbind.WithHost("127.0.0.1"),
//	    portbind.WithMaxAttempts(20),
//	)
//	if err != nil {
//	    log.Fatal(err) // ErrPortRangeExceeded or ErrNoAvailablePort
//	}
//
// # Residual Race
//
// Every probe closes its socket before returning, so a port reported as
// bound or available can be taken by another process before the caller
// listens on it. IsPortAvailable is for diagnostics only. Callers that need a
// true reservation must keep their own listener open.
//
// # Concurrency
//
// All functions are safe for concurrent use. Concurrent calls for the same
// port are arbitrated by the kernel's bind: while one caller holds the
// socket, the others fail with a bind error and back off.
package portbind
