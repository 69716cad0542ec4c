// Package game is the ebiten Game: it feeds input into the sensor and card
// state, steps the simulations at a fixed rate and hands a Scene to the
// renderer.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/vnc/internal/audio"
	"github.com/iburimskiy/vnc/internal/backdrop"
	"github.com/iburimskiy/vnc/internal/card"
	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/festival"
	"github.com/iburimskiy/vnc/internal/log"
	"github.com/iburimskiy/vnc/internal/particle"
	"github.com/iburimskiy/vnc/internal/render"
	"github.com/iburimskiy/vnc/internal/rng"
	"github.com/iburimskiy/vnc/internal/sensor"
	"github.com/iburimskiy/vnc/internal/spring"
)

type Game struct {
	settings config.Settings
	profile  config.Profile
	clock    func() time.Time

	// input
	norm    *sensor.Normalizer
	session *sensor.Session
	filter  *spring.Filter
	signal  sensor.Signal
	touch   touchState
	prevKey map[ebiten.Key]bool
	cursor  card.Point

	// card
	card    *card.Card
	lanyard *card.Lanyard
	quad    [4]card.Point
	front   bool
	hover   card.Target

	// scene
	fest     festival.Festival
	engine   *particle.Engine
	backdrop *backdrop.Backdrop
	renderer *render.Renderer
	width    int
	height   int

	// audio
	player *audio.Player
	level  float64

	// status line, fed by background actions
	results     chan string
	status      string
	statusTicks int
	busy        bool
	closed      bool
}

// New builds the game from runtime settings.
func New(s config.Settings) *Game {
	src := rng.New(s.Seed)
	g := &Game{
		settings: s,
		profile:  config.DefaultProfile,
		clock:    time.Now,
		prevKey:  map[ebiten.Key]bool{},
		results:  make(chan string, 4),
		width:    s.Width,
		height:   s.Height,
	}

	g.norm = sensor.NewNormalizer(sensor.OrientationRange{
		Range:    config.OrientationRange,
		RestBeta: config.OrientationRestY,
	})
	g.session = sensor.NewSession(g.norm, sensor.PlatformSource())
	g.session.Start()
	g.filter = spring.NewFilter(config.TPS, spring.Critical(config.SmoothMass, config.SmoothStiffness))

	g.card = card.New(src)
	g.lanyard = card.NewLanyard(config.TPS)
	g.backdrop = backdrop.New(config.TPS, src)

	var sources []card.PatternSource
	if s.PatternPath != "" {
		sources = append(sources, card.FileSource(s.PatternPath))
	}
	g.renderer = render.New(card.ResolvePattern(sources...))

	g.fest = chooseFestival(s, g.clock())
	log.Info("festival selected", "kind", g.fest.Kind, "name", g.fest.Name)
	g.engine = particle.New(g.fest.Kind, src)
	g.renderer.Particles.Additive = g.fest.Kind == festival.Sparkles
	g.resize(g.width, g.height)
	g.engine.Start()

	if s.Audio {
		p, err := audio.NewPlayer(0.5)
		if err != nil {
			log.Warn("audio disabled", "err", err)
			g.setStatus("Audio unavailable")
		} else {
			g.player = p
		}
	}
	return g
}

// chooseFestival honors VNC_FESTIVAL, then VNC_DATE, then today.
func chooseFestival(s config.Settings, now time.Time) festival.Festival {
	if s.Festival != "" {
		k, err := festival.ParseKind(s.Festival)
		if err == nil {
			return festival.Named(k)
		}
		log.Warn("ignoring festival override", "value", s.Festival, "err", err)
	}
	d, err := s.FestivalDate(now)
	if err != nil {
		log.Warn("ignoring date override", "value", s.Date, "err", err)
	}
	return festival.Select(d)
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}
	g.drainResults()

	now := g.clock()
	g.signal = g.filter.Step(g.norm.Latest())
	g.card.Update(now)
	if g.settings.Layout == config.LayoutLanyard {
		g.lanyard.Step(g.signal)
	}
	g.backdrop.Step(g.cursor.X, g.cursor.Y)
	g.quad, g.front = g.projectCard()

	if bursts := g.engine.Step(); bursts > 0 {
		g.player.Play(audio.CueBurst)
	}
	flips, explosions := g.card.Events()
	if flips > 0 {
		g.player.Play(audio.CueFlip)
	}
	if explosions > 0 {
		g.player.Play(audio.CueExplode)
	}
	g.level = g.player.Level()

	if g.statusTicks > 0 {
		g.statusTicks--
		if g.statusTicks == 0 {
			g.status = ""
		}
	}
	return nil
}

// tilt is the maximum ambient rotation for the active input mode.
func (g *Game) tilt() float64 {
	if g.norm.Mode() == sensor.ModeOrientation {
		return config.MobileTilt
	}
	return g.settings.Tilt
}

// projectCard places the card for this frame. In the lanyard layout the
// card hangs from the top center and swings about that point.
func (g *Game) projectCard() ([4]card.Point, bool) {
	w, h := float64(g.width), float64(g.height)
	if g.settings.Layout != config.LayoutLanyard {
		rx, ry := g.card.Rotation(g.signal, g.tilt())
		return card.Project(w/2, h/2, config.CardWidth, config.CardHeight, rx, ry, config.CardPerspective)
	}

	tx, ty := g.signal.Tilt(config.SignalTilt)
	rx, ry := g.card.Rotation(sensor.Signal{}, 0)
	angle, shift := g.lanyard.Pose()
	cx := w/2 + shift.X
	cy := h/2 + shift.Y + 20
	q, front := card.Project(cx, cy, config.CardWidth, config.CardHeight, rx+tx, ry+ty, config.CardPerspective)
	pivot := card.Point{X: w / 2, Y: 0}
	for i := range q {
		q[i] = card.Rotate2D(q[i], pivot, angle)
	}
	return q, front
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.engine.Resize(float64(w), float64(h))
	g.renderer.Particles.Resize(w, h)
}

// Close releases listeners, timers, particles and audio. It is safe to call
// more than once.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.session.Close()
	g.card.Close()
	g.engine.Stop()
	g.player.Close()
	log.Debug("game closed")
}
