package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/giantswarm/portbind/internal/netutil"
)

// fakeProber records every probed port and answers from fn.
type fakeProber struct {
	mu    sync.Mutex
	ports []int
	fn    func(port, call int) error
}

func (f *fakeProber) Probe(_ context.Context, port int, _ string) error {
	f.mu.Lock()
	f.ports = append(f.ports, port)
	call := len(f.ports)
	f.mu.Unlock()
	if f.fn == nil {
		return nil
	}
	return f.fn(port, call)
}

func (f *fakeProber) probed() []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.ports...)
}

// inUse builds the error a real probe returns for a held port.
func inUse(port int) error {
	return &netutil.BindError{Port: port, Host: "127.0.0.1", Err: errors.New("address already in use")}
}

// newTestBinder returns a Binder with zero jitter driven by prober.
func newTestBinder(t *testing.T, prober Prober, modify func(c *Config)) *Binder {
	t.Helper()
	cfg := validConfig()
	cfg.Jitter = func() time.Duration { return 0 }
	if modify != nil {
		modify(&cfg)
	}
	return NewBinderWithProber(cfg, prober)
}
