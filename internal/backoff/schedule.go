package backoff

import (
	"math"
	"math/rand/v2"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// Schedule defaults: attempt 1 waits 100ms, each later attempt doubles, and
// no base exceeds one second. Jitter adds up to 50ms on top.
const (
	DefaultBase      = 100 * time.Millisecond
	DefaultFactor    = 2.0
	DefaultCap       = time.Second
	DefaultMaxJitter = 50 * time.Millisecond
)

// JitterFunc returns a random duration to add to the base delay. It must be
// safe for concurrent use.
type JitterFunc func() time.Duration

// DefaultJitter returns a duration drawn uniformly from [0, DefaultMaxJitter).
func DefaultJitter() time.Duration {
	return rand.N(DefaultMaxJitter)
}

// NoJitter always returns zero.
func NoJitter() time.Duration { return 0 }

// Schedule yields successive inter-attempt delays. A Schedule is owned by a
// single retry loop and is not safe for concurrent use.
type Schedule struct {
	base   wait.Backoff
	jitter JitterFunc
}

// NewSchedule returns a Schedule starting at DefaultBase. If jitter is nil,
// DefaultJitter is used.
func NewSchedule(jitter JitterFunc) *Schedule {
	if jitter == nil {
		jitter = DefaultJitter
	}
	return &Schedule{
		base: wait.Backoff{
			Duration: DefaultBase,
			Factor:   DefaultFactor,
			Cap:      DefaultCap,
			// Steps only has to stay positive until the cap is reached;
			// wait.Backoff then keeps returning Cap.
			Steps: math.MaxInt32,
		},
		jitter: jitter,
	}
}

// Next returns the delay to wait after the current failed attempt and
// advances the schedule. Calls n=1,2,3,... return
// min(100ms * 2^(n-1), 1s) plus jitter. Negative jitter is treated as zero.
func (s *Schedule) Next() (delay, base time.Duration) {
	base = s.base.Step()
	j := s.jitter()
	if j < 0 {
		j = 0
	}
	return base + j, base
}
