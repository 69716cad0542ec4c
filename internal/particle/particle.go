package particle

import (
	"image/color"
	"math"

	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/festival"
	"github.com/iburimskiy/vnc/internal/rng"
)

// Particle is one ambient flake, petal, leaf, heart or sparkle, or one
// firework spark. Fields a kind does not use stay zero.
type Particle struct {
	Pos      Vec
	Vel      Vec
	Size     float64
	Rotation float64
	Spin     float64
	Opacity  float64

	Twinkle      float64
	TwinkleSpeed float64

	Color color.NRGBA

	// Firework sparks only.
	Life  float64
	Decay float64
}

// effect describes one ambient particle kind.
type effect interface {
	spawn(src rng.Source, w, h float64) Particle
	// expired reports whether p left the visible area.
	expired(p Particle, h float64) bool
	recycle(p *Particle, src rng.Source, w, h float64)
	draw(c Canvas, p Particle)
}

const recycleMargin = config.RecycleMargin

var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	snowGlow  = color.NRGBA{R: 200, G: 230, B: 255, A: 128}
	petalPink = color.NRGBA{R: 255, G: 182, B: 193, A: 255}
	heartPink = color.NRGBA{R: 255, G: 105, B: 180, A: 255}
	gold      = color.NRGBA{R: 255, G: 215, B: 0, A: 255}
	leafRed   = color.NRGBA{R: 0xff, G: 0x6b, B: 0x35, A: 255}
	leafAmber = color.NRGBA{R: 0xff, G: 0xa5, B: 0x00, A: 255}
)

func effectFor(k festival.Kind) effect {
	switch k {
	case festival.Snow:
		return snow{}
	case festival.Sakura:
		return sakura{}
	case festival.Leaves:
		return leaves{}
	case festival.Hearts:
		return hearts{}
	case festival.Sparkles:
		return sparkles{}
	}
	return nil
}

// falling is shared by the kinds that drift down and wrap to the top.
type falling struct{}

func (falling) expired(p Particle, h float64) bool { return p.Pos.Y > h+recycleMargin }

func (falling) recycle(p *Particle, src rng.Source, w, _ float64) {
	p.Pos = Vec{src.Float64() * w, -recycleMargin}
}

type snow struct{ falling }

func (snow) spawn(src rng.Source, w, h float64) Particle {
	return Particle{
		Pos:     Vec{src.Float64() * w, src.Float64()*h - h},
		Vel:     Vec{rng.Range(src, -0.25, 0.25), rng.Range(src, 0.5, 1.5)},
		Size:    rng.Range(src, 1, 4),
		Opacity: rng.Range(src, 0.4, 1),
	}
}

func (snow) draw(c Canvas, p Particle) {
	glow(c, p.Pos, p.Size, snowGlow, 10)
	c.FillCircle(p.Pos, p.Size, withAlpha(white, p.Opacity))
}

type sakura struct{ falling }

func (sakura) spawn(src rng.Source, w, h float64) Particle {
	return Particle{
		Pos:      Vec{src.Float64() * w, src.Float64()*h - h},
		Vel:      Vec{rng.Range(src, -1, 1), rng.Range(src, 0.5, 2)},
		Size:     rng.Range(src, 4, 12),
		Rotation: src.Float64() * 2 * math.Pi,
		Spin:     rng.Centered(src, 0.05),
		Opacity:  rng.Range(src, 0.4, 1),
	}
}

func (sakura) draw(c Canvas, p Particle) {
	pts := transform(regularPolygon(5, p.Size), p.Pos, p.Rotation)
	c.FillPolygon(pts, withAlpha(petalPink, p.Opacity))
}

type leaves struct{ falling }

func (leaves) spawn(src rng.Source, w, h float64) Particle {
	p := Particle{
		Pos:      Vec{src.Float64() * w, src.Float64()*h - h},
		Vel:      Vec{rng.Range(src, -1, 1), rng.Range(src, 1, 3)},
		Size:     rng.Range(src, 5, 15),
		Rotation: src.Float64() * 2 * math.Pi,
		Spin:     rng.Centered(src, 0.08),
		Opacity:  rng.Range(src, 0.3, 1),
		Color:    leafAmber,
	}
	if rng.Chance(src, 0.5) {
		p.Color = leafRed
	}
	return p
}

func (leaves) draw(c Canvas, p Particle) {
	pts := transform(ellipse(p.Size*0.6, p.Size, 16), p.Pos, p.Rotation)
	c.FillPolygon(pts, withAlpha(p.Color, p.Opacity))
}

// hearts rise from below the bottom edge and respawn once past the top.
type hearts struct{}

func (hearts) spawn(src rng.Source, w, h float64) Particle {
	return Particle{
		Pos:      Vec{src.Float64() * w, h + src.Float64()*100},
		Vel:      Vec{rng.Range(src, -0.25, 0.25), -rng.Range(src, 1, 3)},
		Size:     rng.Range(src, 6, 18),
		Rotation: rng.Centered(src, 0.2),
		Opacity:  rng.Range(src, 0.3, 0.8),
	}
}

func (hearts) expired(p Particle, _ float64) bool { return p.Pos.Y < -recycleMargin }

func (h hearts) recycle(p *Particle, src rng.Source, width, height float64) {
	*p = h.spawn(src, width, height)
}

func (hearts) draw(c Canvas, p Particle) {
	pts := transform(heart(p.Size), p.Pos, p.Rotation)
	c.FillPolygon(pts, withAlpha(heartPink, p.Opacity))
}

type sparkles struct{ falling }

func (sparkles) spawn(src rng.Source, w, h float64) Particle {
	return Particle{
		Pos:          Vec{src.Float64() * w, src.Float64() * h},
		Vel:          Vec{rng.Range(src, -0.25, 0.25), rng.Range(src, 0.5, 1.5)},
		Size:         rng.Range(src, 2, 6),
		Opacity:      src.Float64(),
		Twinkle:      src.Float64() * 2 * math.Pi,
		TwinkleSpeed: rng.Range(src, 0.05, 0.15),
	}
}

func (sparkles) draw(c Canvas, p Particle) {
	a := p.Opacity * math.Abs(math.Sin(p.Twinkle))
	radialSparkle(c, p.Pos, p.Size, gold, white, a)
}
