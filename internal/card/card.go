// Package card holds the state of the flippable name card: flip, touch
// tilt, the avatar easter egg and its scatter animation.
package card

import (
	"math"
	"time"

	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/gesture"
	"github.com/iburimskiy/vnc/internal/rng"
	"github.com/iburimskiy/vnc/internal/sensor"
	"github.com/iburimskiy/vnc/internal/spring"
)

// Piece is a front-face element that scatters when the card explodes.
type Piece int

const (
	Avatar Piece = iota
	Name
	Role
	Hint
	NumPieces
)

// PieceTransform is the current scatter offset of one piece.
type PieceTransform struct {
	DX, DY  float64
	Rotate  float64 // degrees
	Scale   float64
	Opacity float64
}

type scatter struct {
	dx, dy, rotate, scale, opacity *spring.Scalar
}

func newScatter(fps int) scatter {
	p := spring.Params{Mass: 1, Stiffness: 100, Damping: 10}
	s := scatter{
		dx:      spring.NewScalar(fps, p),
		dy:      spring.NewScalar(fps, p),
		rotate:  spring.NewScalar(fps, p),
		scale:   spring.NewScalar(fps, p),
		opacity: spring.NewScalar(fps, p),
	}
	s.scale.Snap(1)
	s.opacity.Snap(1)
	return s
}

func (s scatter) all() []*spring.Scalar {
	return []*spring.Scalar{s.dx, s.dy, s.rotate, s.scale, s.opacity}
}

// Card is the flip and gesture state machine behind the rendered card.
type Card struct {
	src     rng.Source
	tracker *gesture.Tracker
	egg     *gesture.EasterEgg

	flipped bool
	flip    *spring.Scalar
	dragX   *spring.Scalar
	dragY   *spring.Scalar
	pieces  [NumPieces]scatter

	// Events since the last call to Events.
	flips, explosions int
}

func New(src rng.Source) *Card {
	c := &Card{
		src:     src,
		tracker: gesture.NewTracker(gesture.DefaultThresholds()),
		egg:     gesture.NewEasterEgg(config.EggTaps, config.EggWindow, config.EggRevertAfter),
		flip: spring.NewScalar(config.TPS, spring.Params{
			Mass: 1, Stiffness: config.FlipStiffness, Damping: config.FlipDamping,
		}),
		dragX: spring.NewScalar(config.TPS, spring.Critical(1, 300)),
		dragY: spring.NewScalar(config.TPS, spring.Critical(1, 300)),
	}
	for i := range c.pieces {
		c.pieces[i] = newScatter(config.TPS)
	}
	return c
}

// Flip toggles the card. It is ignored while exploded or while a touch
// drag is in progress, and reports whether the card turned.
func (c *Card) Flip() bool {
	if c.egg.Exploded() || c.tracker.Dragging() {
		return false
	}
	c.flipped = !c.flipped
	if c.flipped {
		c.flip.SetTarget(180)
	} else {
		c.flip.SetTarget(0)
	}
	c.flips++
	return true
}

// Press starts a touch at screen position (x, y).
func (c *Card) Press(x, y float64, at time.Time) {
	c.tracker.Begin(x, y, at)
}

// Drag moves the active touch; the card follows the finger.
func (c *Card) Drag(x, y float64) {
	if !c.tracker.Active() {
		return
	}
	dx, dy := c.tracker.Move(x, y)
	c.dragY.SetTarget(clampDeg(dx*config.DragTiltPerPixel, config.DragTiltMax))
	c.dragX.SetTarget(clampDeg(-dy*config.DragTiltPerPixel, config.DragTiltMax))
}

// Release ends the touch. A swipe flips the card; a tap flips it too,
// unless it landed on the avatar, where it counts toward the easter egg.
func (c *Card) Release(at time.Time, onAvatar bool) gesture.Kind {
	if !c.tracker.Active() {
		return gesture.None
	}
	r := c.tracker.End(at)
	c.dragX.SetTarget(0)
	c.dragY.SetTarget(0)

	switch r.Kind {
	case gesture.Swipe:
		c.Flip()
	case gesture.Tap:
		if onAvatar && !c.flipped {
			c.AvatarTap(at)
		} else {
			c.Flip()
		}
	}
	return r.Kind
}

// CancelTouch drops the active touch without classifying it.
func (c *Card) CancelTouch() {
	c.tracker.Cancel()
	c.dragX.SetTarget(0)
	c.dragY.SetTarget(0)
}

// AvatarTap counts a tap on the avatar and reports whether it exploded
// the card.
func (c *Card) AvatarTap(at time.Time) bool {
	if !c.egg.Tap(at) {
		return false
	}
	for i := range c.pieces {
		p := c.pieces[i]
		p.dx.SetTarget(rng.Centered(c.src, config.ScatterSpan))
		p.dy.SetTarget(rng.Centered(c.src, config.ScatterSpan))
		p.rotate.SetTarget(rng.Centered(c.src, config.ScatterSpin))
		p.scale.SetTarget(rng.Range(c.src, 0.5, 1))
		p.opacity.SetTarget(0.8)
	}
	c.explosions++
	return true
}

// Update advances timers and springs by one frame.
func (c *Card) Update(now time.Time) {
	if c.egg.Update(now) {
		for i := range c.pieces {
			p := c.pieces[i]
			p.dx.SetTarget(0)
			p.dy.SetTarget(0)
			p.rotate.SetTarget(0)
			p.scale.SetTarget(1)
			p.opacity.SetTarget(1)
		}
	}
	c.flip.Step()
	c.dragX.Step()
	c.dragY.Step()
	for i := range c.pieces {
		for _, s := range c.pieces[i].all() {
			s.Step()
		}
	}
}

// Close cancels pending timers and the active touch.
func (c *Card) Close() {
	c.egg.Reset()
	c.tracker.Cancel()
}

// Rotation combines the ambient signal, the touch tilt and the flip into
// the card's rotation in degrees about the X and Y axes.
func (c *Card) Rotation(ambient sensor.Signal, tilt float64) (rx, ry float64) {
	rx = -ambient.Y*tilt + c.dragX.Value()
	ry = ambient.X*tilt + c.flip.Value() + c.dragY.Value()
	return rx, ry
}

// DragTilt is the touch-derived rotation in degrees.
func (c *Card) DragTilt() (tx, ty float64) {
	return c.dragX.Value(), c.dragY.Value()
}

func (c *Card) Flipped() bool { return c.flipped }

func (c *Card) FlipAngle() float64 { return c.flip.Value() }

func (c *Card) Exploded() bool { return c.egg.Exploded() }

func (c *Card) Dragging() bool { return c.tracker.Dragging() }

func (c *Card) Piece(p Piece) PieceTransform {
	s := c.pieces[p]
	return PieceTransform{
		DX:      s.dx.Value(),
		DY:      s.dy.Value(),
		Rotate:  s.rotate.Value(),
		Scale:   s.scale.Value(),
		Opacity: math.Max(0, math.Min(1, s.opacity.Value())),
	}
}

// Events returns the flips and explosions since the previous call.
func (c *Card) Events() (flips, explosions int) {
	flips, explosions = c.flips, c.explosions
	c.flips, c.explosions = 0, 0
	return flips, explosions
}

func clampDeg(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
