package card

import (
	"math"

	"github.com/iburimskiy/vnc/internal/sensor"
)

// Overlay is the holographic layer state for one frame. Offsets are in
// pixels, positions in percent of the gradient, shifts in card widths.
type Overlay struct {
	DepthOffset    Point
	ParallaxOffset Point
	PatternAngle   float64 // degrees

	IridescenceOpacity float64
	Brightness         float64
	Contrast           float64
	GradientPos        Point

	GlareOpacity float64
	GlareShift   float64

	BorderAlpha float64
	GlowAlpha   float64
}

// ComputeOverlay derives the overlay from the smoothed signal, the flip
// state and the touch tilt in degrees.
func ComputeOverlay(s sensor.Signal, flipped bool, dragX, dragY float64) Overlay {
	ex := s.X + dragY/30
	ey := s.Y + dragX/30
	o := Overlay{
		DepthOffset:        Point{s.X * 30, s.Y * 30},
		ParallaxOffset:     Point{s.X * 60, s.Y * 60},
		PatternAngle:       -10,
		IridescenceOpacity: 0.5,
		Brightness:         1.2,
		Contrast:           1.2,
		GradientPos:        Point{50 + ex*100, 50 + ey*100},
		GlareOpacity:       math.Abs(s.X) * 0.5,
		GlareShift:         s.X * 1.2,
		BorderAlpha:        0.1,
		GlowAlpha:          0.1,
	}
	if flipped {
		o.IridescenceOpacity = 0.7
		o.Brightness = 1.4
		o.Contrast = 1.3
		o.BorderAlpha = 0.2
		o.GlowAlpha = 0.2
	}
	return o
}
