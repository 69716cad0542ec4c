// Package particle runs the festival particle simulations: snow, sakura,
// leaves, hearts, sparkles and fireworks.
package particle

import (
	"image/color"
	"math"
)

// Vec is a point or velocity in surface pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }

// Rotate rotates v about the origin by a radians.
func (v Vec) Rotate(a float64) Vec {
	sin, cos := math.Sincos(a)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Canvas is the 2D drawing surface an Engine renders into. Colors are
// non-premultiplied.
type Canvas interface {
	Clear()
	FillCircle(center Vec, r float64, clr color.NRGBA)
	FillPolygon(pts []Vec, clr color.NRGBA)
}
