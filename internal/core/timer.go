package core

import "time"

// FixedStep paces simulation ticks at a steady rate from a wall clock that
// is polled irregularly.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxCatchUp  int
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep targeting the given ticks per second.
// The first poll is always due.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{maxCatchUp: 4, now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive rates fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval is the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetMaxCatchUp bounds how many ticks Due reports after a stall; time beyond
// that is dropped.
func (f *FixedStep) SetMaxCatchUp(n int) {
	if n < 1 {
		n = 1
	}
	f.maxCatchUp = n
}

// Due reports how many ticks have elapsed since the previous poll.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	if n > f.maxCatchUp {
		n = f.maxCatchUp
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

// ShouldStep reports whether at least one tick is due, consuming one.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
