// Package board implements the timer board aggregate: an ordered collection
// of countdown timers plus the global controls acting on them. The board is
// owned by a single logical actor (the render loop); all mutation happens
// synchronously within one tick.
package board

import (
	"time"

	"github.com/xolan/torchtimer/internal/countdown"
)

const (
	// DefaultTemplateName seeds the name of newly spawned timers.
	DefaultTemplateName = "torch"
	// DefaultTemplateMinutes seeds the duration of newly spawned timers.
	DefaultTemplateMinutes = 60
)

// Cue is the completion-cue collaborator. Play is fire-and-forget.
type Cue interface {
	Play()
}

// Board owns the ordered timer collection, the new-timer template, the
// identity counter, the global running flag and the bulk nudge step.
//
// The global running flag records which of start/pause the user pressed last;
// it says nothing about any individual timer's state (a timer can be paused
// while the flag is set, either through its local pause or by reaching zero).
type Board struct {
	TemplateName    string
	TemplateMinutes int
	Step            int // bulk nudge step, minutes

	timers  []*countdown.Timer
	nextID  uint32
	running bool

	inPass  bool
	pending []pendingSpawn
}

// pendingSpawn is a timer created while a Pass is traversing the collection.
// It is held back and spliced in after the traversal so the in-progress
// iteration is never invalidated.
type pendingSpawn struct {
	afterID uint32
	atEnd   bool
	timer   *countdown.Timer
}

// New returns a board seeded with one paused timer built from the default
// template. The identity counter starts past the seeded timer so ids are
// never reused.
func New() *Board {
	b := &Board{
		TemplateName:    DefaultTemplateName,
		TemplateMinutes: DefaultTemplateMinutes,
		Step:            countdown.DefaultStep,
	}
	b.timers = []*countdown.Timer{b.newFromTemplate()}
	return b
}

// Empty returns a board with no timers and the default template. Used when
// rehydrating persisted state.
func Empty() *Board {
	return &Board{
		TemplateName:    DefaultTemplateName,
		TemplateMinutes: DefaultTemplateMinutes,
		Step:            countdown.DefaultStep,
	}
}

func (b *Board) newFromTemplate() *countdown.Timer {
	t := countdown.New(b.TemplateName, b.TemplateMinutes, b.nextID)
	b.nextID++ // uint32 wraps without panicking
	return t
}

// Timers returns the ordered timer collection. The slice is owned by the
// board; callers must not mutate it outside a tick.
func (b *Board) Timers() []*countdown.Timer {
	return b.timers
}

// Len returns the number of timers on the board.
func (b *Board) Len() int {
	return len(b.timers)
}

// Running reports the global running flag.
func (b *Board) Running() bool {
	return b.running
}

// Timer returns the timer with the given identity, or nil.
func (b *Board) Timer(id uint32) *countdown.Timer {
	for _, t := range b.timers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// SpawnTimer creates a timer from the template and appends it to the board.
// The timer starts immediately when the global running flag is set.
func (b *Board) SpawnTimer(now time.Time) *countdown.Timer {
	t := b.newFromTemplate()
	if b.running {
		t.Start(now)
	}
	if b.inPass {
		b.pending = append(b.pending, pendingSpawn{atEnd: true, timer: t})
		return t
	}
	b.timers = append(b.timers, t)
	return t
}

// SpawnTimerAfter creates a timer from the template and inserts it directly
// after the row with the given identity, or appends it when that row is gone.
// Spawns requested during a Pass are deferred and spliced in afterwards.
func (b *Board) SpawnTimerAfter(now time.Time, afterID uint32) *countdown.Timer {
	t := b.newFromTemplate()
	if b.running {
		t.Start(now)
	}
	if b.inPass {
		b.pending = append(b.pending, pendingSpawn{afterID: afterID, timer: t})
		return t
	}
	b.insertAfter(afterID, t)
	return t
}

func (b *Board) insertAfter(afterID uint32, t *countdown.Timer) {
	for i, existing := range b.timers {
		if existing.ID == afterID {
			b.timers = append(b.timers, nil)
			copy(b.timers[i+2:], b.timers[i+1:])
			b.timers[i+1] = t
			return
		}
	}
	b.timers = append(b.timers, t)
}

// RemoveTimer removes the timer with the given identity. Removing an absent
// identity is a no-op.
func (b *Board) RemoveTimer(id uint32) {
	for i, t := range b.timers {
		if t.ID == id {
			b.timers = append(b.timers[:i], b.timers[i+1:]...)
			return
		}
	}
}

// BulkAdd adds minutes to every timer whose local pause is off. Locally
// paused timers are skipped entirely, regardless of the global running flag.
func (b *Board) BulkAdd(minutes int) {
	for _, t := range b.timers {
		if !t.LocalPause {
			t.AddTime(minutes)
		}
	}
}

// BulkRemove removes minutes from every timer whose local pause is off.
func (b *Board) BulkRemove(minutes int) {
	for _, t := range b.timers {
		if !t.LocalPause {
			t.RemoveTime(minutes)
		}
	}
}

// GlobalStart starts every paused timer whose local pause is off and sets the
// global running flag. Already-running and locally paused timers are
// untouched.
func (b *Board) GlobalStart(now time.Time) {
	for _, t := range b.timers {
		if t.IsPaused() && !t.LocalPause {
			t.Start(now)
		}
	}
	b.running = true
}

// GlobalPause pauses every running timer, freezing each at its remaining
// time as of now, and clears the global running flag.
func (b *Board) GlobalPause(now time.Time) {
	for _, t := range b.timers {
		if !t.IsPaused() {
			t.Pause(t.Remaining(now))
		}
	}
	b.running = false
}

// SetLocalPause flips a timer's local pause override. Turning it on pauses
// the timer immediately, capturing the current remaining time. Turning it off
// while the global flag is running starts the timer right away.
func (b *Board) SetLocalPause(now time.Time, id uint32, paused bool) {
	t := b.Timer(id)
	if t == nil {
		return
	}
	if paused {
		if !t.IsPaused() {
			t.Pause(t.Remaining(now))
		}
		t.LocalPause = true
		return
	}
	t.LocalPause = false
	if b.running && t.IsPaused() {
		t.Start(now)
	}
}

// ToggleLocalPause flips the local pause of the timer with the given id.
func (b *Board) ToggleLocalPause(now time.Time, id uint32) {
	if t := b.Timer(id); t != nil {
		b.SetLocalPause(now, id, !t.LocalPause)
	}
}

// Pass walks the timers in order, handing each timer and its remaining time
// as of now to visit. Returning false removes the timer in place. Timers
// spawned through SpawnTimer/SpawnTimerAfter during the pass are queued and
// spliced in after the traversal completes, preserving the originating row's
// position.
func (b *Board) Pass(now time.Time, visit func(t *countdown.Timer, left time.Duration) bool) {
	b.inPass = true
	kept := b.timers[:0]
	for _, t := range b.timers {
		if visit(t, t.Remaining(now)) {
			kept = append(kept, t)
		}
	}
	// Release the tail so removed timers do not linger in the backing array.
	for i := len(kept); i < len(b.timers); i++ {
		b.timers[i] = nil
	}
	b.timers = kept
	b.inPass = false

	for _, p := range b.pending {
		if p.atEnd {
			b.timers = append(b.timers, p.timer)
		} else {
			b.insertAfter(p.afterID, p.timer)
		}
	}
	b.pending = nil
}

// Tick is the once-per-second entry point driven by the render host. It
// fires the completion cue exactly once per zero-crossing and re-arms the
// per-timer flag as soon as the remaining time is non-zero again.
func (b *Board) Tick(now time.Time, cue Cue) {
	b.Pass(now, func(t *countdown.Timer, left time.Duration) bool {
		if left == 0 {
			if !t.CueFired() {
				if cue != nil {
					cue.Play()
				}
				t.MarkCueFired()
			}
		} else if t.CueFired() {
			t.RearmCue()
		}
		return true
	})
}
