package backoff

import (
	"sync"
	"testing"
	"time"
)

func TestSchedule_NextBase(t *testing.T) {
	t.Parallel()

	want := []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
		time.Second,
		time.Second,
		time.Second,
	}

	s := NewSchedule(NoJitter)
	for i, w := range want {
		delay, base := s.Next()
		if base != w {
			t.Errorf("attempt %d: base = %s, want %s", i+1, base, w)
		}
		if delay != base {
			t.Errorf("attempt %d: delay = %s with NoJitter, want %s", i+1, delay, base)
		}
	}
}

func TestSchedule_CapHoldsForManyAttempts(t *testing.T) {
	t.Parallel()

	s := NewSchedule(NoJitter)
	for i := range 200 {
		_, base := s.Next()
		if base > DefaultCap {
			t.Fatalf("attempt %d: base %s exceeds cap %s", i+1, base, DefaultCap)
		}
	}
}

func TestSchedule_JitterIsAdditive(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		jitter JitterFunc
		want   time.Duration
	}{
		"fixed 7ms":      {jitter: func() time.Duration { return 7 * time.Millisecond }, want: 107 * time.Millisecond},
		"zero":           {jitter: NoJitter, want: 100 * time.Millisecond},
		"negative clamp": {jitter: func() time.Duration { return -time.Second }, want: 100 * time.Millisecond},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			delay, _ := NewSchedule(tc.jitter).Next()
			if delay != tc.want {
				t.Errorf("delay = %s, want %s", delay, tc.want)
			}
		})
	}
}

func TestDefaultJitter_Range(t *testing.T) {
	t.Parallel()

	seen := make(map[time.Duration]struct{})
	for range 1000 {
		j := DefaultJitter()
		if j < 0 || j >= DefaultMaxJitter {
			t.Fatalf("DefaultJitter() = %s, want in [0, %s)", j, DefaultMaxJitter)
		}
		seen[j] = struct{}{}
	}
	if len(seen) < 2 {
		t.Errorf("DefaultJitter produced %d distinct values over 1000 draws, want variance", len(seen))
	}
}

func TestDefaultJitter_Concurrent(t *testing.T) {
	t.Parallel()

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			if j := DefaultJitter(); j < 0 || j >= DefaultMaxJitter {
				t.Errorf("DefaultJitter() = %s out of range", j)
			}
		})
	}
	wg.Wait()
}

func TestNewSchedule_NilJitterUsesDefault(t *testing.T) {
	t.Parallel()

	s := NewSchedule(nil)
	delay, base := s.Next()
	if delay < base || delay >= base+DefaultMaxJitter {
		t.Errorf("delay = %s, want in [%s, %s)", delay, base, base+DefaultMaxJitter)
	}
}
