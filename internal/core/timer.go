package core

import "time"

// maxCatchUp bounds how many steps a single Advance call may report after a
// long stall (window drag, debugger pause).
const maxCatchUp = 4

// FixedStep helps run simulation updates at a steady period, independent of
// the frame rate of the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given period.
func NewFixedStep(period time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetPeriod(period)
	fs.accumulator = fs.step
	return fs
}

// SetPeriod changes the step period. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = 15 * time.Millisecond
	}
	f.step = period
}

// Period returns the configured step period.
func (f *FixedStep) Period() time.Duration { return f.step }

// Advance accumulates the time elapsed since the previous call and reports how
// many whole steps are due.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta
	steps := 0
	for f.accumulator >= f.step && steps < maxCatchUp {
		f.accumulator -= f.step
		steps++
	}
	if steps == maxCatchUp {
		f.accumulator = 0
	}
	return steps
}

// ShouldStep reports whether the simulation should advance by at least one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(time.Now()) > 0
}
