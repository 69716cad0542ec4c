package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate      = beep.SampleRate(44100)
	meterRingSize   = 4096
	smoothingFactor = 0.6
)

// Player mixes cues into the speaker. A nil *Player is silent, so callers
// can run without audio.
type Player struct {
	mixer *beep.Mixer
	meter *meterTap
	gain  float64

	mu    sync.Mutex
	level float64
}

// NewPlayer initializes the speaker and starts the mixer. gain in [0, 1]
// scales every cue.
func NewPlayer(gain float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{mixer: &beep.Mixer{}, gain: gain}
	p.meter = newMeterTap(p.mixer, meterRingSize)
	speaker.Play(p.meter)
	return p, nil
}

// Play queues a cue.
func (p *Player) Play(c Cue) {
	if p == nil {
		return
	}
	s := cueStreamer(sampleRate, c, p.gain)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Level returns the smoothed loudness of recent output in [0, 1].
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	mag := rms(p.meter.snapshot(sampleRate.N(time.Second / 30)))
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = smoothingFactor*p.level + (1-smoothingFactor)*mag
	return min(1, p.level)
}

// Close silences all cues.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
