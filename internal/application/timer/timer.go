// Package timer provides a countdown advanced by elapsed time.
package timer

import "time"

// Mode selects what happens when a timer reaches its duration.
type Mode int

const (
	Once Mode = iota
	Repeating
)

// Timer counts elapsed time up to a duration.
//
// A Once timer stays finished until Reset. A Repeating timer wraps and
// reports finished only on the tick it wrapped.
type Timer struct {
	duration     time.Duration
	elapsed      time.Duration
	mode         Mode
	finished     bool
	justFinished bool
	wraps        int
}

// New creates a timer that has not started counting.
func New(d time.Duration, mode Mode) Timer {
	return Timer{duration: d, mode: mode}
}

// Tick advances the timer by delta and returns it for chaining.
func (t *Timer) Tick(delta time.Duration) *Timer {
	t.justFinished = false
	t.wraps = 0

	if t.mode == Once {
		if t.finished {
			return t
		}
		t.elapsed += delta
		if t.elapsed >= t.duration {
			t.elapsed = t.duration
			t.finished = true
			t.justFinished = true
		}
		return t
	}

	t.finished = false
	t.elapsed += delta
	if t.duration <= 0 {
		t.elapsed = 0
		t.finished, t.justFinished, t.wraps = true, true, 1
		return t
	}
	if t.elapsed >= t.duration {
		t.wraps = int(t.elapsed / t.duration)
		t.elapsed %= t.duration
		t.finished = true
		t.justFinished = true
	}
	return t
}

// Finished reports whether the timer has reached its duration.
func (t *Timer) Finished() bool { return t.finished }

// JustFinished reports whether the last Tick crossed the duration.
func (t *Timer) JustFinished() bool { return t.justFinished }

// Wraps returns how many times a repeating timer wrapped during the last Tick.
func (t *Timer) Wraps() int { return t.wraps }

// Reset rewinds the timer to zero elapsed.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
	t.justFinished = false
	t.wraps = 0
}

// Elapsed returns the time counted so far.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Duration returns the configured duration.
func (t *Timer) Duration() time.Duration { return t.duration }

// Remaining returns the time left before the timer finishes.
func (t *Timer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}
