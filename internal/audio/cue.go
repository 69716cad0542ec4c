// Package audio plays short synthesized cues for card and festival events
// and exposes their loudness for the card glow.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

type Cue int

const (
	CueFlip Cue = iota
	CueExplode
	CueBurst
)

// partial is one decaying sine in a cue.
type partial struct {
	freq  float64
	amp   float64
	decay float64 // per second
}

var cues = map[Cue]struct {
	length   time.Duration
	partials []partial
}{
	CueFlip:    {180 * time.Millisecond, []partial{{880, 0.4, 18}, {1320, 0.2, 24}}},
	CueExplode: {900 * time.Millisecond, []partial{{220, 0.35, 4}, {277, 0.3, 5}, {330, 0.2, 6}, {440, 0.15, 8}}},
	CueBurst:   {600 * time.Millisecond, []partial{{90, 0.5, 7}, {1800, 0.1, 12}}},
}

// chime renders a sum of decaying sines for the given length.
func chime(sr beep.SampleRate, length time.Duration, partials []partial) beep.Streamer {
	total := sr.N(length)
	pos := 0
	dt := 1 / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && pos < total {
			t := float64(pos) * dt
			var v float64
			for _, p := range partials {
				v += p.amp * math.Exp(-p.decay*t) * math.Sin(2*math.Pi*p.freq*t)
			}
			samples[n][0], samples[n][1] = v, v
			n++
			pos++
		}
		return n, true
	})
}

// cueStreamer plays c scaled by gain in [0, 1]. effects.Volume multiplies
// by Base^Volume, so the gain goes in as its base 2 logarithm.
func cueStreamer(sr beep.SampleRate, c Cue, gain float64) beep.Streamer {
	def, ok := cues[c]
	if !ok {
		return nil
	}
	gain = min(gain, 1)
	return &effects.Volume{
		Streamer: chime(sr, def.length, def.partials),
		Base:     2,
		Volume:   math.Log2(max(gain, 1e-6)),
		Silent:   gain <= 0,
	}
}
