// Package audio plays a short synthesized blip when the ball bounces.
// Pitch rises with impact speed. The speaker is initialized once; if
// that fails the toy runs silent, which is not an error.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipDuration = 50 * time.Millisecond

	baseFreq = 440.0
	maxFreq  = 1320.0
	// impact speed (px/s) that maps to maxFreq; faster hits clamp there
	speedForMaxFreq = 900.0
)

// Player owns the speaker and synthesizes bounce blips.
type Player struct {
	enabled bool
	muted   bool
}

// NewPlayer initializes the speaker. On failure the returned Player is
// usable but silent, and the error is reported for logging.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Player{}, err
	}
	return &Player{enabled: true}, nil
}

// Blip plays a short sine tone whose pitch scales with impact speed.
// Safe to call on a nil, silent, or muted player.
func (p *Player) Blip(impactSpeed float64) {
	if p == nil || !p.enabled || p.muted {
		return
	}
	freq := baseFreq + (maxFreq-baseFreq)*math.Min(impactSpeed/speedForMaxFreq, 1)
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDuration), tone))
}

// SetMuted sets the mute state.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.muted = muted
}

// ToggleMute flips the mute state and reports the new value.
func (p *Player) ToggleMute() bool {
	if p == nil {
		return false
	}
	p.muted = !p.muted
	return p.muted
}
