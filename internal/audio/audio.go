// Package audio plays the completion cue for timers that reach zero.
//
// The cue is a short synthesized tone rather than a bundled sample, so the
// binary stays self-contained. When no audio device is available the package
// degrades to a silent no-op cue instead of failing.
package audio

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/generators"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneFreq   = 880
	toneLength = 400 * time.Millisecond
)

// Cue is anything that can play a one-shot completion sound.
type Cue interface {
	Play()
}

// NopCue is a silent Cue. It is used when sound is disabled in the config
// or when the audio device cannot be initialized.
type NopCue struct{}

func (NopCue) Play() {}

// SpeakerCue plays a short tone through the system speaker.
// Play is non-blocking and skips while a previous cue is still sounding.
type SpeakerCue struct {
	mu   sync.Mutex
	busy bool
}

var speakerInit sync.Once
var speakerErr error

// New returns a SpeakerCue backed by the system audio device, or a NopCue
// if the device cannot be initialized (e.g. headless environments).
func New() Cue {
	speakerInit.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return NopCue{}
	}
	return &SpeakerCue{}
}

// Play sounds the cue. If a cue is already playing, the call is dropped.
func (c *SpeakerCue) Play() {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	c.mu.Unlock()

	tone, err := generators.SinTone(sampleRate, toneFreq)
	if err != nil {
		c.clearBusy()
		return
	}

	quieter := &effects.Volume{
		Streamer: beep.Take(sampleRate.N(toneLength), tone),
		Base:     2,
		Volume:   -2,
	}

	speaker.Play(beep.Seq(quieter, beep.Callback(c.clearBusy)))
}

func (c *SpeakerCue) clearBusy() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}
