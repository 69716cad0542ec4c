package particle

import (
	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/festival"
	"github.com/iburimskiy/vnc/internal/rng"
)

const (
	ambientCount     = config.AmbientParticles
	fireworkCooldown = config.FireworkCooldown
)

// Engine owns the particle population of one mounted effect. Nothing
// moves until Start and nothing is drawn after Stop.
type Engine struct {
	kind festival.Kind
	fx   effect
	src  rng.Source

	w, h float64

	particles []Particle
	fireworks []*Firework
	timer     int
	running   bool
}

// New returns a stopped engine for kind drawing its randomness from src.
func New(kind festival.Kind, src rng.Source) *Engine {
	return &Engine{kind: kind, fx: effectFor(kind), src: src}
}

func (e *Engine) Kind() festival.Kind { return e.kind }

func (e *Engine) Running() bool { return e.running }

// Resize updates the surface bounds without touching the population.
func (e *Engine) Resize(w, h float64) {
	e.w, e.h = w, h
}

// Start populates the initial particles. It reports false, doing nothing,
// when there is no effect or no drawable area.
func (e *Engine) Start() bool {
	if e.running {
		return true
	}
	if e.kind == festival.None || e.w <= 0 || e.h <= 0 {
		return false
	}
	if e.fx != nil {
		e.particles = make([]Particle, ambientCount)
		for i := range e.particles {
			e.particles[i] = e.fx.spawn(e.src, e.w, e.h)
		}
	}
	e.fireworks = nil
	e.timer = 0
	e.running = true
	return true
}

// Stop releases the population. A later Start begins afresh.
func (e *Engine) Stop() {
	e.running = false
	e.particles = nil
	e.fireworks = nil
	e.timer = 0
}

// Step advances the simulation one frame and returns how many fireworks
// burst during it.
func (e *Engine) Step() int {
	if !e.running {
		return 0
	}
	if e.kind == festival.Fireworks {
		return e.stepFireworks()
	}
	for i := range e.particles {
		p := &e.particles[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Rotation += p.Spin
		p.Twinkle += p.TwinkleSpeed
		if e.fx.expired(*p, e.h) {
			e.fx.recycle(p, e.src, e.w, e.h)
		}
	}
	return 0
}

func (e *Engine) stepFireworks() int {
	e.timer++
	if e.timer > fireworkCooldown {
		e.fireworks = append(e.fireworks, newFirework(e.src, e.w, e.h))
		e.timer = 0
	}

	bursts := 0
	live := e.fireworks[:0]
	for _, f := range e.fireworks {
		if f.step(e.src) {
			bursts++
		}
		if !f.Done() {
			live = append(live, f)
		}
	}
	for i := len(live); i < len(e.fireworks); i++ {
		e.fireworks[i] = nil
	}
	e.fireworks = live
	return bursts
}

// Draw clears c and renders the current frame. A nil canvas is a no-op.
func (e *Engine) Draw(c Canvas) {
	if c == nil {
		return
	}
	c.Clear()
	if !e.running {
		return
	}
	for _, f := range e.fireworks {
		f.draw(c)
	}
	if e.fx == nil {
		return
	}
	for _, p := range e.particles {
		e.fx.draw(c, p)
	}
}

// Particles returns a copy of the ambient population.
func (e *Engine) Particles() []Particle {
	return append([]Particle(nil), e.particles...)
}

// Fireworks returns a copy of the live fireworks.
func (e *Engine) Fireworks() []Firework {
	out := make([]Firework, len(e.fireworks))
	for i, f := range e.fireworks {
		out[i] = *f
		out[i].Sparks = append([]Particle(nil), f.Sparks...)
	}
	return out
}
