// Package spring smooths animated values with damped springs.
package spring

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Params describes a mass-spring-damper.
type Params struct {
	Mass      float64
	Stiffness float64
	Damping   float64
}

// Critical returns parameters with the damping that settles fastest
// without overshoot.
func Critical(mass, stiffness float64) Params {
	return Params{Mass: mass, Stiffness: stiffness, Damping: 2 * math.Sqrt(stiffness*mass)}
}

// AngularFrequency is sqrt(k/m).
func (p Params) AngularFrequency() float64 {
	if p.Mass <= 0 {
		return 0
	}
	return math.Sqrt(p.Stiffness / p.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)); 1 is critical.
func (p Params) DampingRatio() float64 {
	km := p.Stiffness * p.Mass
	if km <= 0 {
		return 0
	}
	return p.Damping / (2 * math.Sqrt(km))
}

func (p Params) spring(fps int) harmonica.Spring {
	return harmonica.NewSpring(harmonica.FPS(fps), p.AngularFrequency(), p.DampingRatio())
}

// Scalar is one sprung value advanced once per frame.
type Scalar struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func NewScalar(fps int, p Params) *Scalar {
	return &Scalar{spring: p.spring(fps)}
}

func (s *Scalar) SetTarget(v float64) { s.target = v }

func (s *Scalar) Target() float64 { return s.target }

// Snap jumps to v with no motion.
func (s *Scalar) Snap(v float64) {
	s.pos, s.vel, s.target = v, 0, v
}

// Step advances one frame toward the target and returns the new value.
func (s *Scalar) Step() float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	return s.pos
}

func (s *Scalar) Value() float64 { return s.pos }

// Settled reports whether the value rests within eps of the target.
func (s *Scalar) Settled(eps float64) bool {
	return math.Abs(s.pos-s.target) < eps && math.Abs(s.vel) < eps
}
