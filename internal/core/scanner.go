package core

import (
	"context"
	"fmt"

	"github.com/giantswarm/portbind/internal/netutil"
)

// Scan returns the first port in [startPort, startPort+MaxAttempts-1] that a
// single bind attempt succeeds on. Candidates are probed in ascending order
// with no backoff; the scan stops at the first success.
//
// Errors:
//   - netutil.ErrInvalidPort if startPort is outside [1, 65535].
//   - *ScanError wrapping ErrPortRangeExceeded as soon as the next candidate
//     would be above 65535. Lower candidates are still probed first, and
//     the reported End is 65536, the first unreachable candidate.
//   - *ScanError wrapping ErrNoAvailablePort naming the full range when
//     every candidate failed.
//   - the context error if ctx is done between candidates.
//
// The returned port was bindable when probed but is not reserved.
func (b *Binder) Scan(ctx context.Context, startPort int) (int, error) {
	if err := netutil.ValidatePort(startPort); err != nil {
		return 0, err
	}

	// Candidates past MaxPort+1 are never reached, so the budget is capped
	// there. This keeps end from overflowing for very large MaxAttempts.
	n := min(b.cfg.MaxAttempts, netutil.MaxPort-startPort+2)
	end := startPort + n - 1
	log := Logger().With("host", b.cfg.Host, "start", startPort, "end", end)

	var lastErr error
	for offset := range n {
		candidate := startPort + offset
		if candidate > netutil.MaxPort {
			err := &ScanError{
				Host:  b.cfg.Host,
				Start: startPort,
				End:   end,
				Port:  candidate,
				Err:   ErrPortRangeExceeded,
			}
			log.Warn("port scan aborted", "err", err)
			return 0, err
		}
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("scan %s ports %d-%d interrupted at %d: %w",
				b.cfg.Host, startPort, end, candidate, err)
		}

		_, err := b.bind(ctx, candidate, 1)
		if err == nil {
			log.Debug("port scan found port", "port", candidate, "tried", offset+1)
			return candidate, nil
		}
		lastErr = err
		log.Debug("port scan candidate unavailable", "port", candidate, "err", err)
	}

	err := &ScanError{
		Host:  b.cfg.Host,
		Start: startPort,
		End:   end,
		Err:   ErrNoAvailablePort,
		Last:  lastErr,
	}
	log.Warn("port scan exhausted", "err", err)
	return 0, err
}
