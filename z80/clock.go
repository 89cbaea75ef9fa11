package z80

import "time"

// Clock is the pacing capability Step calls with elapsed wall-clock
// measurements. Swapping it out (SetClock) is how headless/fast-mode runs
// and tests skip the real-time sleep without touching the decoder — the
// decoder itself never sleeps, only Step does.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

// NullClock never sleeps; Now advances a fixed tick each call so elapsed
// durations stay well-defined for tests that want deterministic frame
// timing without wall-clock variance.
type NullClock struct {
	t time.Time
}

func (n *NullClock) Now() time.Time {
	n.t = n.t.Add(time.Microsecond)
	return n.t
}

func (n *NullClock) Sleep(time.Duration) {}
