package netutil

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"
)

// DefaultProbeTimeout bounds a single bind attempt. It only matters when the
// network stack never answers the listen call; a normal bind resolves in
// microseconds.
const DefaultProbeTimeout = 5 * time.Second

// listenFunc opens a listener. It matches [net.ListenConfig.Listen] and is
// swapped out in tests to simulate a stalled network stack.
type listenFunc func(ctx context.Context, network, address string) (net.Listener, error)

// Prober performs atomic bind attempts against a (port, host) pair.
// A Prober holds no per-call state and is safe for concurrent use.
type Prober struct {
	timeout time.Duration
	listen  listenFunc
	log     *slog.Logger
}

// NewProber creates a Prober whose attempts each time out after timeout.
// If timeout is not positive, DefaultProbeTimeout is used. If logger is nil,
// slog.Default() is used as a fallback.
func NewProber(timeout time.Duration, logger *slog.Logger) *Prober {
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	var lc net.ListenConfig
	return &Prober{
		timeout: timeout,
		listen:  lc.Listen,
		log:     logger,
	}
}

// Timeout returns the per-attempt deadline.
func (p *Prober) Timeout() time.Duration {
	return p.timeout
}

// listenResult carries the outcome of the single listen call.
type listenResult struct {
	l   net.Listener
	err error
}

// Claim binds and listens on host:port with exactly one listen call and, on
// success, returns the open listener. The caller owns the listener and must
// close it; while it is open no other socket can bind the same address.
//
// Claim returns a *BindError if the operating system rejects the bind or ctx
// is done, and a *TimeoutError if the listen call does not return within the
// probe timeout. The port is not validated here.
func (p *Prober) Claim(ctx context.Context, port int, host string) (net.Listener, error) {
	if err := ctx.Err(); err != nil {
		return nil, &BindError{Port: port, Host: host, Err: err}
	}

	listenCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	timer := time.NewTimer(p.timeout)
	defer timer.Stop()

	// Buffered so the listen goroutine never blocks after the caller has
	// given up on it.
	done := make(chan listenResult, 1)
	addr := Address(host, port)
	go func() {
		l, err := p.listen(listenCtx, "tcp", addr)
		done <- listenResult{l: l, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, &BindError{Port: port, Host: host, Err: r.err}
		}
		return r.l, nil
	case <-timer.C:
		p.releaseLate(done, addr)
		return nil, &TimeoutError{Port: port, Host: host, Timeout: p.timeout}
	case <-ctx.Done():
		p.releaseLate(done, addr)
		return nil, &BindError{Port: port, Host: host, Err: ctx.Err()}
	}
}

// releaseLate closes the listener of an abandoned listen call once it
// arrives, so a bind that completes after its deadline does not keep the
// port occupied.
func (p *Prober) releaseLate(done <-chan listenResult, addr string) {
	go func() {
		r := <-done
		if r.l == nil {
			return
		}
		if err := r.l.Close(); err != nil {
			p.log.Debug("close late listener", "addr", addr, "err", err)
			return
		}
		p.log.Debug("closed listener that bound after deadline", "addr", addr)
	}()
}

// Probe performs one atomic bind on host:port and immediately releases the
// socket. A nil error means the kernel accepted the bind at the instant of
// the call. The port is free again once Probe returns, so another process can
// take it before the caller rebinds.
func (p *Prober) Probe(ctx context.Context, port int, host string) error {
	l, err := p.Claim(ctx, port, host)
	if err != nil {
		return err
	}
	if closeErr := l.Close(); closeErr != nil {
		p.log.Debug("close probe listener", "port", port, "host", host, "err", closeErr)
	}
	return nil
}

// ListenerPort returns the TCP port a listener is bound to.
func ListenerPort(l net.Listener) (int, error) {
	tcpAddr, ok := l.Addr().(*net.TCPAddr)
	if !ok {
		return 0, fmt.Errorf("unexpected address type: %T", l.Addr())
	}
	return tcpAddr.Port, nil
}
