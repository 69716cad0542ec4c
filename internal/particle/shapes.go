package particle

import (
	"image/color"
	"math"
)

const curveSegments = 10

// transform rotates local points by rot and moves them to at.
func transform(pts []Vec, at Vec, rot float64) []Vec {
	for i, p := range pts {
		pts[i] = p.Rotate(rot).Add(at)
	}
	return pts
}

// regularPolygon returns n vertices on a circle of radius r.
func regularPolygon(n int, r float64) []Vec {
	pts := make([]Vec, n)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = Vec{math.Cos(a) * r, math.Sin(a) * r}
	}
	return pts
}

func ellipse(rx, ry float64, n int) []Vec {
	pts := make([]Vec, n)
	for i := range pts {
		a := float64(i) * 2 * math.Pi / float64(n)
		pts[i] = Vec{math.Cos(a) * rx, math.Sin(a) * ry}
	}
	return pts
}

// cubic appends the flattened cubic bezier from p0 (exclusive) to p3.
func cubic(pts []Vec, p0, p1, p2, p3 Vec) []Vec {
	for i := 1; i <= curveSegments; i++ {
		t := float64(i) / curveSegments
		u := 1 - t
		a, b, c, d := u*u*u, 3*u*u*t, 3*u*t*t, t*t*t
		pts = append(pts, Vec{
			a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return pts
}

// heart is the two-lobed outline of size s with its notch at (0, s/4)
// and its tip at (0, s).
func heart(s float64) []Vec {
	start := Vec{0, s / 4}
	tip := Vec{0, s}
	pts := []Vec{start}
	pts = cubic(pts, start, Vec{-s / 2, -s / 4}, Vec{-s, s / 8}, tip)
	pts = cubic(pts, tip, Vec{s, s / 8}, Vec{s / 2, -s / 4}, start)
	return pts[:len(pts)-1]
}

// glow approximates a blurred shadow with fading concentric discs.
func glow(c Canvas, at Vec, r float64, clr color.NRGBA, spread float64) {
	base := float64(clr.A) / 255
	for i := 3; i >= 1; i-- {
		k := float64(i) / 3
		c.FillCircle(at, r+spread*k, withAlpha(clr, base*(1-k)*0.5))
	}
}

// radialSparkle approximates a radial gradient from inner to transparent
// at twice the radius.
func radialSparkle(c Canvas, at Vec, r float64, inner, outer color.NRGBA, alpha float64) {
	c.FillCircle(at, 2*r, withAlpha(outer, alpha*0.1))
	c.FillCircle(at, 1.5*r, withAlpha(outer, alpha*0.25))
	c.FillCircle(at, r, withAlpha(outer, alpha*0.5))
	c.FillCircle(at, 0.5*r, withAlpha(inner, alpha))
}
