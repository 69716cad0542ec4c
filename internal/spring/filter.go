package spring

import "github.com/iburimskiy/vnc/internal/sensor"

// Filter drives a smoothed Signal toward the latest raw Signal. It only
// moves when Step is called, so it pauses with the render loop and resumes
// from where it stopped.
type Filter struct {
	x, y *Scalar
}

// NewFilter builds a filter advanced at fps frames per second.
func NewFilter(fps int, p Params) *Filter {
	return &Filter{x: NewScalar(fps, p), y: NewScalar(fps, p)}
}

// Step moves one frame toward target. The output stays within [-1, 1].
func (f *Filter) Step(target sensor.Signal) sensor.Signal {
	t := target.Clamp()
	f.x.SetTarget(t.X)
	f.y.SetTarget(t.Y)
	bound(f.x)
	bound(f.y)
	return f.Value()
}

func bound(s *Scalar) {
	v := s.Step()
	if v > 1 || v < -1 {
		s.pos = max(-1, min(1, v))
		s.vel = 0
	}
}

func (f *Filter) Value() sensor.Signal {
	return sensor.Signal{X: f.x.Value(), Y: f.y.Value()}
}

// Settled reports whether both axes rest within eps of their target.
func (f *Filter) Settled(eps float64) bool {
	return f.x.Settled(eps) && f.y.Settled(eps)
}
