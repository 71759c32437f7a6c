package bringup

import "time"

// DefaultSettle lets rail voltages and downstream regulators settle before the
// panel is addressed. Skipping it shows up as intermittent panel init failures.
const DefaultSettle = 100 * time.Millisecond

// Sleeper blocks the caller for d.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleepFunc adapts a function to Sleeper.
type SleepFunc func(time.Duration)

func (f SleepFunc) Sleep(d time.Duration) { f(d) }

// Stabilize blocks for d. Negative durations are treated as zero.
func Stabilize(s Sleeper, d time.Duration) {
	if d < 0 {
		d = 0
	}
	s.Sleep(d)
}
