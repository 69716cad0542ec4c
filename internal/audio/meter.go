package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// meterTap wraps a beep.Streamer and records the last N samples into a ring
// buffer so the renderer can pulse the card glow with the cue sounds.
type meterTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	mu        sync.RWMutex
}

func newMeterTap(src beep.Streamer, ringSize int) *meterTap {
	return &meterTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *meterTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *meterTap) Err() error { return t.Source.Err() }

// snapshot returns up to last n samples (stereo) from the ring buffer (most recent last).
func (t *meterTap) snapshot(n int) [][2]float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	out := make([][2]float64, n)
	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := range out {
		out[i] = t.buffer[idx]
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}

// rms is the root mean square of the mono mix, compressed for display.
func rms(samples [][2]float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sumSquares float64
	for _, s := range samples {
		mono := (s[0] + s[1]) * 0.5
		sumSquares += mono * mono
	}
	return math.Pow(math.Sqrt(sumSquares/float64(len(samples))), 0.3)
}
