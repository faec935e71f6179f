package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/giantswarm/portbind/internal/backoff"
	"github.com/giantswarm/portbind/internal/netutil"
)

// Prober performs one atomic bind-and-release attempt. *netutil.Prober is
// the production implementation.
type Prober interface {
	Probe(ctx context.Context, port int, host string) error
}

var _ Prober = (*netutil.Prober)(nil)

// Binder claims ports through a Prober. It holds only immutable
// configuration, so one Binder may serve concurrent calls for different
// ports; for the same port the kernel decides which caller wins.
type Binder struct {
	cfg    Config
	prober Prober
}

// NewBinder creates a Binder that probes with a *netutil.Prober.
// Panics if cfg is invalid, since option values are programmer input.
func NewBinder(cfg Config) *Binder {
	return NewBinderWithProber(cfg, netutil.NewProber(cfg.ProbeTimeout, Logger()))
}

// NewBinderWithProber creates a Binder using p for every attempt.
// Panics if cfg is invalid or p is nil.
func NewBinderWithProber(cfg Config, p Prober) *Binder {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("portbind: invalid binder config: %v", err))
	}
	if p == nil {
		panic("portbind: prober must not be nil")
	}
	return &Binder{cfg: cfg, prober: p}
}

// Config returns a copy of the Binder's configuration.
func (b *Binder) Config() Config {
	return b.cfg
}

// Bind probes port on the configured host up to MaxRetries times, waiting
// min(100ms*2^(n-1), 1s) plus jitter after failed attempt n. It returns nil
// on the first successful probe.
//
// An invalid port fails immediately with an error wrapping
// netutil.ErrInvalidPort, before any socket is created. When every attempt
// fails, the error of the last attempt (a *netutil.BindError or
// *netutil.TimeoutError) is returned as is. If ctx is done during a backoff
// wait, the context error is returned joined with the last attempt error.
func (b *Binder) Bind(ctx context.Context, port int) error {
	attempts, err := b.bind(ctx, port, b.cfg.MaxRetries)
	if err != nil && !errors.Is(err, netutil.ErrInvalidPort) {
		Logger().Warn("bind failed",
			"port", port, "host", b.cfg.Host, "attempts", attempts,
			"max_attempts", b.cfg.MaxRetries, "err", err)
	}
	return err
}

// bind is the retry loop. Its state is the attempt index, the last error,
// and the remaining budget maxRetries-attempt. It returns the number of
// probes actually made alongside the outcome.
func (b *Binder) bind(ctx context.Context, port, maxRetries int) (int, error) {
	if err := netutil.ValidatePort(port); err != nil {
		return 0, err
	}

	log := Logger().With("port", port, "host", b.cfg.Host)
	schedule := backoff.NewSchedule(b.cfg.Jitter)
	start := time.Now()

	var (
		lastErr  error
		attempts int
	)
	for attempt := 1; attempt <= maxRetries; attempt++ {
		attempts = attempt
		log.Debug("bind attempt", "attempt", attempt, "max_attempts", maxRetries)

		err := b.prober.Probe(ctx, port, b.cfg.Host)
		if err == nil {
			log.Debug("bind succeeded", "attempt", attempt, "elapsed", time.Since(start))
			return attempts, nil
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}

		delay, base := schedule.Next()
		log.Debug("bind attempt failed, retrying",
			"attempt", attempt, "delay", delay, "base_delay", base, "err", err)

		if waitErr := sleep(ctx, delay); waitErr != nil {
			return attempts, errors.Join(
				fmt.Errorf("bind retry on port %d interrupted after attempt %d: %w", port, attempt, waitErr),
				lastErr,
			)
		}
	}

	if lastErr == nil {
		return attempts, ErrUnknownBind
	}
	log.Debug("bind attempts exhausted",
		"attempts", attempts, "elapsed", time.Since(start), "err", lastErr)
	return attempts, lastErr
}

// sleep waits for d on a real timer or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Available reports whether a single probe of port currently succeeds.
// It never returns an error: invalid ports and every kind of probe failure
// report false.
//
// The answer is stale as soon as Available returns. Use it for diagnostics
// only; Bind is the only race-free way to claim a port.
func (b *Binder) Available(ctx context.Context, port int) bool {
	if netutil.ValidatePort(port) != nil {
		return false
	}
	err := b.prober.Probe(ctx, port, b.cfg.Host)
	Logger().Debug("port availability", "port", port, "host", b.cfg.Host, "available", err == nil, "err", err)
	return err == nil
}
