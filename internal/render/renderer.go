package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/vnc/internal/backdrop"
	"github.com/iburimskiy/vnc/internal/card"
	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/festival"
	"github.com/iburimskiy/vnc/internal/particle"
)

// Scene is everything one frame needs, gathered by the game.
type Scene struct {
	Width, Height float64

	Profile config.Profile
	Quad    [4]card.Point
	Front   bool
	Overlay card.Overlay
	Pieces  [card.NumPieces]card.PieceTransform
	Hover   card.Target

	// Level is the current audio loudness in [0, 1].
	Level float64

	Backdrop *backdrop.Backdrop
	Festival festival.Festival

	// Lanyard, when set, hangs the card from a string at the top center.
	Lanyard bool

	MotionPrompt bool
	Status       string
}

// Renderer owns the offscreen faces and the particle layer.
type Renderer struct {
	front, back *ebiten.Image
	pattern     *ebiten.Image
	text        labels

	// Particles is the surface the particle engine draws into.
	Particles *Layer

	vs []ebiten.Vertex
	is []uint16
}

func New(pattern image.Image) *Renderer {
	r := &Renderer{
		front:     ebiten.NewImage(config.CardWidth, config.CardHeight),
		back:      ebiten.NewImage(config.CardWidth, config.CardHeight),
		text:      labels{},
		Particles: NewLayer(),
	}
	if pattern != nil {
		r.pattern = ebiten.NewImageFromImage(pattern)
	}
	return r
}

func (r *Renderer) Draw(screen *ebiten.Image, s Scene) {
	r.drawBackdrop(screen, s)
	if s.Lanyard {
		r.drawLanyard(screen, s)
	}
	r.drawGlow(screen, s)
	if s.Front {
		r.drawFront(s)
		r.drawQuad(screen, r.front, s.Quad, false)
	} else {
		r.drawBack(s)
		r.drawQuad(screen, r.back, s.Quad, true)
	}
	r.Particles.DrawOn(screen)
	r.drawHUD(screen, s)
}

func (r *Renderer) drawBackdrop(screen *ebiten.Image, s Scene) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 15, A: 255})
	line := color.RGBA{R: 255, G: 255, B: 255, A: 6}
	for x := 0.0; x < s.Width; x += backdrop.GridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(s.Height), 1, line, false)
	}
	for y := 0.0; y < s.Height; y += backdrop.GridSpacing {
		vector.StrokeLine(screen, 0, float32(y), float32(s.Width), float32(y), 1, line, false)
	}
	if s.Backdrop == nil {
		return
	}
	for _, g := range s.Backdrop.Orbs(s.Width, s.Height) {
		softDisc(screen, g)
	}
	for _, g := range s.Backdrop.Spotlights() {
		softDisc(screen, g)
	}
}

// softDisc approximates a radial falloff with stacked translucent discs.
func softDisc(dst *ebiten.Image, g backdrop.Glow) {
	const rings = 8
	for i := rings; i > 0; i-- {
		rad := g.Radius * float64(i) / rings
		vector.DrawFilledCircle(dst, float32(g.X), float32(g.Y), float32(rad), g.Color, true)
	}
}

// drawGlow strokes the card outline, brighter on the back and with sound.
func (r *Renderer) drawGlow(screen *ebiten.Image, s Scene) {
	a := math.Min(1, s.Overlay.GlowAlpha+s.Level*0.5)
	for i, w := range []float32{14, 8, 3} {
		c := color.NRGBA{R: 100, G: 200, B: 255, A: uint8(255 * a * float64(i+1) / 3)}
		for j := range s.Quad {
			p, q := s.Quad[j], s.Quad[(j+1)%4]
			vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), w, c, true)
		}
	}
}

// drawQuad maps a face image onto the projected corners.
func (r *Renderer) drawQuad(screen, face *ebiten.Image, q [4]card.Point, mirrored bool) {
	w, h := float32(config.CardWidth), float32(config.CardHeight)
	src := [4][2]float32{{0, 0}, {w, 0}, {w, h}, {0, h}}
	if mirrored {
		src = [4][2]float32{{w, 0}, {0, 0}, {0, h}, {w, h}}
	}
	r.vs = r.vs[:0]
	for i, p := range q {
		r.vs = append(r.vs, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: src[i][0], SrcY: src[i][1],
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	r.is = append(r.is[:0], 0, 1, 2, 0, 2, 3)
	screen.DrawTriangles(r.vs, r.is, face, &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear})
}

func (r *Renderer) fillPolygon(dst *ebiten.Image, pts []particle.Vec, clr color.NRGBA) {
	r.vs, r.is = fillPolygon(dst, pts, clr, r.vs, r.is)
}

func (r *Renderer) drawLanyard(screen *ebiten.Image, s Scene) {
	top := card.Point{X: (s.Quad[0].X + s.Quad[1].X) / 2, Y: (s.Quad[0].Y + s.Quad[1].Y) / 2}
	strap := color.RGBA{R: 60, G: 70, B: 100, A: 255}
	vector.StrokeLine(screen, float32(s.Width/2), 0, float32(top.X), float32(top.Y), 6, strap, true)
	vector.DrawFilledCircle(screen, float32(top.X), float32(top.Y), 8, color.RGBA{R: 150, G: 160, B: 180, A: 255}, true)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, s Scene) {
	if s.Festival.Kind != festival.None {
		label := s.Festival.Name
		w := len(label)*glyphW + 16
		x := int(s.Width) - w - 16
		vector.DrawFilledRect(screen, float32(x), 16, float32(w), 24, color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
		vector.StrokeRect(screen, float32(x), 16, float32(w), 24, 1, accentColor, false)
		ebitenutil.DebugPrintAt(screen, label, x+8, 20)
	}

	help := "Drag/swipe: flip  Tap avatar x5: surprise  F: flip  C: copy email  V: add contact  Esc/Q: quit"
	if s.MotionPrompt {
		help = "Tap or M: enable motion  " + help
	}
	ebitenutil.DebugPrintAt(screen, help, 16, int(s.Height)-24)
	if s.Status != "" {
		ebitenutil.DebugPrintAt(screen, s.Status, 16, int(s.Height)-44)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f", ebiten.ActualFPS()), 16, 16)
}
