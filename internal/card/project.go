package card

import "math"

// Point is a screen position.
type Point struct {
	X, Y float64
}

// Project rotates a w by h card centered on (cx, cy) by rx degrees about
// the X axis and ry degrees about the Y axis, and projects it with the
// given perspective distance. Corners are returned top-left, top-right,
// bottom-right, bottom-left in card space; front reports whether the
// front face is toward the viewer.
func Project(cx, cy, w, h, rxDeg, ryDeg, perspective float64) (corners [4]Point, front bool) {
	a := rxDeg * math.Pi / 180
	b := ryDeg * math.Pi / 180
	sinA, cosA := math.Sincos(a)
	sinB, cosB := math.Sincos(b)

	local := [4][2]float64{
		{-w / 2, -h / 2},
		{w / 2, -h / 2},
		{w / 2, h / 2},
		{-w / 2, h / 2},
	}
	for i, l := range local {
		x, y, z := l[0], l[1], 0.0

		// rotateY
		x, z = x*cosB+z*sinB, -x*sinB+z*cosB
		// rotateX
		y, z = y*cosA-z*sinA, y*sinA+z*cosA

		s := 1.0
		if perspective > 0 {
			d := perspective - z
			if d < 1 {
				d = 1
			}
			s = perspective / d
		}
		corners[i] = Point{cx + x*s, cy + y*s}
	}
	return corners, cosA*cosB >= 0
}

// Contains reports whether p lies inside the convex quad q.
func Contains(q [4]Point, p Point) bool {
	sign := 0.0
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross == 0 {
			continue
		}
		if sign == 0 {
			sign = cross
		} else if (cross > 0) != (sign > 0) {
			return false
		}
	}
	return true
}

// Rotate2D rotates p about pivot by deg degrees.
func Rotate2D(p, pivot Point, deg float64) Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	dx, dy := p.X-pivot.X, p.Y-pivot.Y
	return Point{pivot.X + dx*cos - dy*sin, pivot.Y + dx*sin + dy*cos}
}

// Sub maps the rectangle (x0, y0)-(x1, y1) of a w by h face onto the
// projected quad q. A mirrored face is read right to left, as the back is
// when the card has turned.
func Sub(q [4]Point, w, h, x0, y0, x1, y1 float64, mirrored bool) [4]Point {
	at := func(x, y float64) Point {
		u, v := x/w, y/h
		if mirrored {
			u = 1 - u
		}
		top := Point{q[0].X + (q[1].X-q[0].X)*u, q[0].Y + (q[1].Y-q[0].Y)*u}
		bot := Point{q[3].X + (q[2].X-q[3].X)*u, q[3].Y + (q[2].Y-q[3].Y)*u}
		return Point{top.X + (bot.X-top.X)*v, top.Y + (bot.Y-top.Y)*v}
	}
	return [4]Point{at(x0, y0), at(x1, y0), at(x1, y1), at(x0, y1)}
}
