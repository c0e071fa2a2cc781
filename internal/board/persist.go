package board

import (
	"time"

	"github.com/xolan/torchtimer/internal/countdown"
	"github.com/xolan/torchtimer/internal/storage"
)

// Snapshot converts the board into its persisted form as of now. Running
// timers are flattened to their remaining duration at the save instant; the
// global running flag is not part of the snapshot, so a reloaded board always
// comes back paused.
func (b *Board) Snapshot(now time.Time) storage.BoardState {
	state := storage.BoardState{
		Timers:          make([]storage.TimerRecord, 0, len(b.timers)),
		TemplateName:    b.TemplateName,
		TemplateMinutes: b.TemplateMinutes,
		NextID:          b.nextID,
		Step:            b.Step,
	}
	for _, t := range b.timers {
		state.Timers = append(state.Timers, storage.TimerRecord{
			Name:             t.Name,
			RemainingSeconds: int64(t.Remaining(now) / time.Second),
			Step:             t.Step,
			LocalPause:       t.LocalPause,
			ID:               t.ID,
		})
	}
	return state
}

// FromState rehydrates a board from persisted state. Every timer comes back
// paused. Timers that were already done when saved have their completion cue
// marked fired, so reopening the app does not replay their cues. Missing
// fields fall back per-field: zero template values revert to the defaults and
// the identity counter is advanced past every restored id.
func FromState(state *storage.BoardState) *Board {
	b := Empty()
	if state.TemplateName != "" {
		b.TemplateName = state.TemplateName
	}
	if state.TemplateMinutes > 0 {
		b.TemplateMinutes = state.TemplateMinutes
	}
	if state.Step > 0 {
		b.Step = state.Step
	}

	b.nextID = state.NextID
	for _, rec := range state.Timers {
		t := countdown.Restore(rec.Name, time.Duration(rec.RemainingSeconds)*time.Second, rec.Step, rec.LocalPause, rec.ID)
		if rec.RemainingSeconds <= 0 {
			t.MarkCueFired()
		}
		b.timers = append(b.timers, t)
		if rec.ID >= b.nextID {
			b.nextID = rec.ID + 1
		}
	}
	return b
}
