package backdrop

import (
	"math"
	"testing"

	"github.com/iburimskiy/vnc/internal/rng"
)

func TestEase(t *testing.T) {
	tests := []struct {
		t, delay, period, want float64
	}{
		{0, 0, 20, 0},
		{10, 0, 20, 1},
		{20, 0, 20, 0},
		{3, 5, 25, 0},
		{5 + 12.5, 5, 25, 1},
	}
	for _, tt := range tests {
		if got := ease(tt.t, tt.delay, tt.period); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ease(%v, %v, %v) = %v, want %v", tt.t, tt.delay, tt.period, got, tt.want)
		}
	}
}

func TestSpotlightsTrailPointer(t *testing.T) {
	b := New(60, rng.New(1))
	b.Step(400, 300)
	first := b.Spotlights()
	if first[0].X >= 400 || first[0].X <= 0 {
		t.Errorf("spotlight should lag the pointer, at %v", first[0].X)
	}
	for i := 0; i < 300; i++ {
		b.Step(400, 300)
	}
	for _, g := range b.Spotlights() {
		if math.Abs(g.X-400) > 0.5 || math.Abs(g.Y-300) > 0.5 {
			t.Errorf("spotlight did not arrive: %+v", g)
		}
	}
}

func TestOrbsStayNearStart(t *testing.T) {
	b := New(60, rng.New(2))
	start := b.Orbs(1000, 800)
	for i := 0; i < 60*30; i++ {
		b.Step(0, 0)
		for j, g := range b.Orbs(1000, 800) {
			if g.X < start[j].X-1e-9 || g.X > start[j].X+400 {
				t.Fatalf("orb %d wandered to %v", j, g.X)
			}
		}
	}
}
