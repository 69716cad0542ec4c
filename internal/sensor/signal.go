// Package sensor turns pointer and device orientation readings into a
// normalized Signal in [-1, 1] on both axes.
package sensor

import "math"

// Signal is normalized horizontal and vertical input.
type Signal struct {
	X, Y float64
}

// Tilt returns the rotation in degrees about the X and Y axes for a
// maximum tilt of maxDeg.
func (s Signal) Tilt(maxDeg float64) (tiltX, tiltY float64) {
	return s.Y * maxDeg, -s.X * maxDeg
}

// Clamp bounds both components to [-1, 1].
func (s Signal) Clamp() Signal {
	return Signal{X: clampUnit(s.X), Y: clampUnit(s.Y)}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// FromPointer maps a cursor position inside a w by h viewport linearly to
// [-1, 1]. Positions outside the viewport clamp to the edge.
func FromPointer(px, py, w, h float64) Signal {
	if w <= 0 || h <= 0 {
		return Signal{}
	}
	return Signal{X: px/w*2 - 1, Y: py/h*2 - 1}.Clamp()
}

// OrientationRange bounds the angular input in degrees.
type OrientationRange struct {
	// Range is the tilt that maps to a full deflection.
	Range float64
	// RestBeta is the front-back angle treated as neutral; phones are held
	// tilted toward the viewer.
	RestBeta float64
}

// FromOrientation maps device left-right tilt (gamma) and front-back tilt
// (beta) to a Signal, clamping out of range readings to the boundary.
func FromOrientation(gamma, beta float64, r OrientationRange) Signal {
	if r.Range <= 0 {
		return Signal{}
	}
	return Signal{X: gamma / r.Range, Y: (beta - r.RestBeta) / r.Range}.Clamp()
}
