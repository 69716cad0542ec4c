// Package backdrop animates the ambient page background: a faint grid,
// slow floating orbs and two glows trailing the pointer.
package backdrop

import (
	"image/color"
	"math"

	"github.com/iburimskiy/vnc/internal/rng"
	"github.com/iburimskiy/vnc/internal/spring"
)

// GridSpacing is the distance between grid lines in pixels.
const GridSpacing = 40

// Glow is a soft disc to draw.
type Glow struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA
}

type orb struct {
	size   float64
	color  color.NRGBA
	period float64 // seconds
	delay  float64
	fx, fy float64 // start position as a fraction of the viewport
}

type spot struct {
	radius float64
	color  color.NRGBA
	x, y   *spring.Scalar
}

type Backdrop struct {
	fps   int
	t     float64
	orbs  []orb
	spots []spot
}

func New(fps int, src rng.Source) *Backdrop {
	b := &Backdrop{fps: fps}
	for _, o := range []orb{
		{size: 400, color: color.NRGBA{100, 200, 255, 38}, period: 20, delay: 0},
		{size: 300, color: color.NRGBA{255, 100, 200, 31}, period: 25, delay: 5},
		{size: 350, color: color.NRGBA{100, 255, 200, 26}, period: 22, delay: 10},
	} {
		o.fx, o.fy = src.Float64(), src.Float64()
		b.orbs = append(b.orbs, o)
	}
	for _, s := range []struct {
		radius float64
		clr    color.NRGBA
		p      spring.Params
	}{
		{300, color.NRGBA{100, 200, 255, 20}, spring.Params{Mass: 0.5, Stiffness: 200, Damping: 30}},
		{200, color.NRGBA{255, 100, 200, 12}, spring.Params{Mass: 0.8, Stiffness: 150, Damping: 25}},
	} {
		b.spots = append(b.spots, spot{
			radius: s.radius,
			color:  s.clr,
			x:      spring.NewScalar(fps, s.p),
			y:      spring.NewScalar(fps, s.p),
		})
	}
	return b
}

// Step advances one frame with the pointer at (px, py).
func (b *Backdrop) Step(px, py float64) {
	b.t += 1 / float64(b.fps)
	for _, s := range b.spots {
		s.x.SetTarget(px)
		s.y.SetTarget(py)
		s.x.Step()
		s.y.Step()
	}
}

// ease goes 0 -> 1 -> 0 over one period, smoothly at both ends.
func ease(t, delay, period float64) float64 {
	if t < delay || period <= 0 {
		return 0
	}
	phase := math.Mod(t-delay, period) / period
	return (1 - math.Cos(2*math.Pi*phase)) / 2
}

// Orbs returns the floating orbs laid out in a w by h viewport.
func (b *Backdrop) Orbs(w, h float64) []Glow {
	out := make([]Glow, len(b.orbs))
	for i, o := range b.orbs {
		k := ease(b.t, o.delay, o.period)
		out[i] = Glow{
			X:      o.fx*w + k*o.size,
			Y:      o.fy*h + k*o.size,
			Radius: o.size / 2 * (1 + 0.2*k),
			Color:  o.color,
		}
	}
	return out
}

// Spotlights returns the pointer glows.
func (b *Backdrop) Spotlights() []Glow {
	out := make([]Glow, len(b.spots))
	for i, s := range b.spots {
		out[i] = Glow{X: s.x.Value(), Y: s.y.Value(), Radius: s.radius, Color: s.color}
	}
	return out
}
