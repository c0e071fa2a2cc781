// Package countdown implements the time-keeping model for a single countdown
// timer. A timer is in exactly one of two states: running toward an absolute
// deadline, or paused with a frozen remaining duration. Deadlines are only
// meaningful in memory; anything persisted is the paused form (a remaining
// duration in seconds).
package countdown

import (
	"math"
	"time"
)

const (
	// BaseUnit converts user-facing minute inputs to internally stored time.
	// All durations are counted in whole seconds; the UI's unit is minutes.
	BaseUnit = time.Minute

	// DefaultStep is the default nudge step, in minutes.
	DefaultStep = 10

	maxDuration = time.Duration(math.MaxInt64)
)

// Timer owns one countdown's temporal state.
//
// Step is the user-adjustable nudge size in minutes, shared by the add,
// remove and set controls. LocalPause exempts the timer from board-level
// start/pause/bulk operations. ID is a stable identity assigned by the board
// and never reused; the TUI uses it to key per-row state.
type Timer struct {
	Name       string
	Step       int
	LocalPause bool
	ID         uint32

	running   bool
	deadline  time.Time     // valid only while running
	remaining time.Duration // valid only while paused
	cueFired  bool
}

// New returns a paused timer with minutes*60 seconds remaining and the
// default nudge step. Negative durations are treated as zero.
func New(name string, minutes int, id uint32) *Timer {
	return &Timer{
		Name:      name,
		Step:      DefaultStep,
		ID:        id,
		remaining: minutesToDuration(minutes),
	}
}

// Restore rebuilds a paused timer from persisted state. A non-positive step
// falls back to the default.
func Restore(name string, remaining time.Duration, step int, localPause bool, id uint32) *Timer {
	if step <= 0 {
		step = DefaultStep
	}
	if remaining < 0 {
		remaining = 0
	}
	return &Timer{
		Name:       name,
		Step:       step,
		LocalPause: localPause,
		ID:         id,
		remaining:  remaining,
	}
}

// AddTime increases the remaining time (or extends the deadline) by the given
// number of minutes. The addition saturates; it never overflows or panics.
func (t *Timer) AddTime(minutes int) {
	d := minutesToDuration(minutes)
	if t.running {
		t.deadline = t.deadline.Add(d)
		return
	}
	t.remaining = saturatingAdd(t.remaining, d)
}

// RemoveTime decreases the remaining time (or pulls in the deadline) by the
// given number of minutes. A paused timer floors at zero. A running timer's
// deadline may move into the past; Remaining clamps to zero at query time.
func (t *Timer) RemoveTime(minutes int) {
	d := minutesToDuration(minutes)
	if t.running {
		t.deadline = t.deadline.Add(-d)
		return
	}
	t.remaining = saturatingSub(t.remaining, d)
}

// SetTime overwrites the remaining time with an absolute value in minutes,
// preserving the current state variant: a running timer's deadline becomes
// now plus the new duration, a paused timer's remaining time is replaced.
func (t *Timer) SetTime(now time.Time, minutes int) {
	d := minutesToDuration(minutes)
	if t.running {
		t.deadline = now.Add(d)
		return
	}
	t.remaining = d
}

// Remaining returns the time left on the countdown as of now. The result is
// never negative: an expired deadline reads as zero.
func (t *Timer) Remaining(now time.Time) time.Duration {
	if !t.running {
		return t.remaining
	}
	left := t.deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// IsPaused reports whether the timer is in the paused state.
func (t *Timer) IsPaused() bool {
	return !t.running
}

// Start transitions a paused timer to running with deadline now+remaining.
// No time is lost in the transition. No-op if already running.
func (t *Timer) Start(now time.Time) {
	if t.running {
		return
	}
	t.deadline = now.Add(t.remaining)
	t.remaining = 0
	t.running = true
}

// Pause unconditionally freezes the timer at the supplied remaining duration.
// The caller passes the remaining time it just computed so that both sides of
// the transition observe the same "now".
func (t *Timer) Pause(timeLeft time.Duration) {
	if timeLeft < 0 {
		timeLeft = 0
	}
	t.running = false
	t.deadline = time.Time{}
	t.remaining = timeLeft
}

// CueFired reports whether the completion cue has already fired for the
// current zero-crossing.
func (t *Timer) CueFired() bool {
	return t.cueFired
}

// MarkCueFired records that the completion cue fired, suppressing repeats
// while the timer stays at zero.
func (t *Timer) MarkCueFired() {
	t.cueFired = true
}

// RearmCue clears the fired flag once the remaining time is non-zero again,
// so the next zero-crossing fires a fresh cue.
func (t *Timer) RearmCue() {
	t.cueFired = false
}

func minutesToDuration(minutes int) time.Duration {
	if minutes <= 0 {
		return 0
	}
	if time.Duration(minutes) > maxDuration/BaseUnit {
		return maxDuration
	}
	return time.Duration(minutes) * BaseUnit
}

func saturatingAdd(a, b time.Duration) time.Duration {
	if a > maxDuration-b {
		return maxDuration
	}
	return a + b
}

func saturatingSub(a, b time.Duration) time.Duration {
	if b >= a {
		return 0
	}
	return a - b
}
