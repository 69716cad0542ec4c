package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestChimeLengthAndDecay(t *testing.T) {
	sr := beep.SampleRate(8000)
	def := cues[CueFlip]
	samples := drain(chime(sr, def.length, def.partials))
	if want := sr.N(def.length); len(samples) != want {
		t.Fatalf("got %d samples, want %d", len(samples), want)
	}
	quarter := len(samples) / 4
	head := rms(samples[:quarter])
	tail := rms(samples[len(samples)-quarter:])
	if !(head > tail) {
		t.Errorf("chime does not decay: head %v tail %v", head, tail)
	}
	for _, s := range samples {
		if math.IsNaN(s[0]) || math.Abs(s[0]) > 1 {
			t.Fatalf("bad sample %v", s)
		}
	}
}

func TestCueStreamers(t *testing.T) {
	for _, c := range []Cue{CueFlip, CueExplode, CueBurst} {
		if cueStreamer(8000, c, 0) == nil {
			t.Errorf("cue %d has no streamer", c)
		}
	}
	if cueStreamer(8000, Cue(99), 0) != nil {
		t.Error("unknown cue should be nil")
	}
}

func peak(samples [][2]float64) float64 {
	m := 0.0
	for _, s := range samples {
		m = max(m, math.Abs(s[0]), math.Abs(s[1]))
	}
	return m
}

func TestCueGainAttenuates(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, c := range []Cue{CueFlip, CueExplode, CueBurst} {
		def := cues[c]
		full := peak(drain(chime(sr, def.length, def.partials)))
		half := peak(drain(cueStreamer(sr, c, 0.5)))
		if math.Abs(half-full/2) > 1e-9 {
			t.Errorf("cue %d: peak at gain 0.5 = %v, want %v", c, half, full/2)
		}
		if half >= 1 {
			t.Errorf("cue %d clips at gain 0.5: %v", c, half)
		}
		if got := peak(drain(cueStreamer(sr, c, 0))); got != 0 {
			t.Errorf("cue %d not silent at gain 0: %v", c, got)
		}
	}
}

type rampStreamer struct{ next float64 }

func (r *rampStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{r.next, r.next}
		r.next++
	}
	return len(samples), true
}

func (r *rampStreamer) Err() error { return nil }

func TestMeterTapSnapshot(t *testing.T) {
	tap := newMeterTap(&rampStreamer{}, 8)
	buf := make([][2]float64, 5)
	tap.Stream(buf)
	tap.Stream(buf)

	got := tap.snapshot(4)
	for i, want := range []float64{6, 7, 8, 9} {
		if got[i][0] != want {
			t.Fatalf("snapshot = %v", got)
		}
	}
	if n := len(tap.snapshot(100)); n != 8 {
		t.Errorf("oversized snapshot len %d", n)
	}
}

func TestRMS(t *testing.T) {
	if rms(nil) != 0 {
		t.Error("rms(nil) != 0")
	}
	if got := rms([][2]float64{{1, 1}, {-1, -1}}); math.Abs(got-1) > 1e-12 {
		t.Errorf("rms full scale = %v", got)
	}
}

func TestNilPlayerIsSilent(t *testing.T) {
	var p *Player
	p.Play(CueFlip)
	p.Close()
	if p.Level() != 0 {
		t.Error("nil player has a level")
	}
}
