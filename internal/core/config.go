package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/giantswarm/portbind/internal/backoff"
)

// Config holds configuration for a Binder.
//
// All fields are immutable after construction via NewBinder. A Binder is
// built per public call, so nothing in Config outlives one operation.
type Config struct {
	// Host is the hostname or IP literal to bind. Resolution failures
	// surface as bind errors rather than configuration errors.
	Host string

	// MaxRetries is the number of real bind attempts Bind makes before
	// returning the last error. Must be at least 1.
	MaxRetries int

	// MaxAttempts is the number of consecutive candidate ports Scan tries,
	// starting at the requested port. Must be at least 1.
	MaxAttempts int

	// ProbeTimeout bounds each individual bind attempt.
	ProbeTimeout time.Duration

	// Jitter supplies the random component added to every backoff delay.
	// Nil means backoff.DefaultJitter.
	Jitter backoff.JitterFunc
}

// Validate checks all Config invariants and returns an error describing
// every violation found, joined with errors.Join.
func (c Config) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, errors.New("host must not be empty"))
	}
	if c.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("max retries must be at least 1, got %d", c.MaxRetries))
	}
	if c.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("max attempts must be at least 1, got %d", c.MaxAttempts))
	}
	if c.ProbeTimeout <= 0 {
		errs = append(errs, fmt.Errorf("probe timeout must be greater than 0, got %s", c.ProbeTimeout))
	}

	return errors.Join(errs...)
}
