package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/vnc/internal/card"
	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/render"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Draw(g.renderer.Particles)

	tx, ty := g.card.DragTilt()
	s := render.Scene{
		Width:        float64(g.width),
		Height:       float64(g.height),
		Profile:      g.profile,
		Quad:         g.quad,
		Front:        g.front,
		Overlay:      card.ComputeOverlay(g.signal, g.card.Flipped(), tx, ty),
		Hover:        g.hover,
		Level:        g.level,
		Backdrop:     g.backdrop,
		Festival:     g.fest,
		Lanyard:      g.settings.Layout == config.LayoutLanyard,
		MotionPrompt: g.session.NeedsPrompt(),
		Status:       g.status,
	}
	for i := range s.Pieces {
		s.Pieces[i] = g.card.Piece(card.Piece(i))
	}
	g.renderer.Draw(screen, s)
}
