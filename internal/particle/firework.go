package particle

import (
	"math"

	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/rng"
)

// Firework rises from the bottom edge to TargetY, then bursts into sparks.
type Firework struct {
	Pos      Vec
	TargetY  float64
	Speed    float64
	Hue      float64
	Exploded bool
	Sparks   []Particle
}

const (
	riseSpeed = config.FireworkRiseSpeed
	sparks    = config.FireworkSparks
	gravity   = config.FireworkGravity
)

func newFirework(src rng.Source, w, h float64) *Firework {
	return &Firework{
		Pos:     Vec{src.Float64() * w, h},
		TargetY: src.Float64() * h * 0.5,
		Speed:   riseSpeed,
		Hue:     src.Float64() * 360,
	}
}

func (f *Firework) explode(src rng.Source) {
	f.Pos.Y = f.TargetY
	f.Sparks = make([]Particle, sparks)
	for i := range f.Sparks {
		angle := 2 * math.Pi * float64(i) / sparks
		v := rng.Range(src, 2, 5)
		f.Sparks[i] = Particle{
			Pos:   f.Pos,
			Vel:   Vec{math.Cos(angle) * v, math.Sin(angle) * v},
			Life:  1,
			Decay: rng.Range(src, 0.01, 0.025),
			Size:  rng.Range(src, 1, 4),
		}
	}
	f.Exploded = true
}

// step advances one frame. It reports whether the firework just exploded.
func (f *Firework) step(src rng.Source) bool {
	if !f.Exploded {
		f.Pos.Y -= f.Speed
		if f.Pos.Y <= f.TargetY {
			f.explode(src)
			return true
		}
		return false
	}

	alive := f.Sparks[:0]
	for _, p := range f.Sparks {
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel.Y += gravity
		p.Life = math.Max(0, p.Life-p.Decay)
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	f.Sparks = alive
	return false
}

// Done reports whether every spark has burned out.
func (f *Firework) Done() bool {
	return f.Exploded && len(f.Sparks) == 0
}

func (f *Firework) draw(c Canvas) {
	if !f.Exploded {
		c.FillCircle(f.Pos, 3, fireworkColor(f.Hue, 1))
		return
	}
	for _, p := range f.Sparks {
		glow(c, p.Pos, p.Size, fireworkColor(f.Hue, p.Life), 10)
		c.FillCircle(p.Pos, p.Size, fireworkColor(f.Hue, p.Life))
	}
}
