package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/vnc/internal/card"
)

// touchState follows the single touch or mouse press driving the card.
type touchState struct {
	active bool
	mouse  bool
	id     ebiten.TouchID
	target card.Target
}

func (g *Game) handleInput() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyF) {
		g.card.Flip()
	}
	if justPressed(ebiten.KeyC) {
		g.copyEmail()
	}
	if justPressed(ebiten.KeyV) {
		g.addContact()
	}
	if justPressed(ebiten.KeyM) {
		g.enableMotion()
	}

	mx, my := ebiten.CursorPosition()
	g.cursor = card.Point{X: float64(mx), Y: float64(my)}
	g.norm.Pointer(g.cursor.X, g.cursor.Y, float64(g.width), float64(g.height))
	g.hover = card.HitTest(g.quad, g.front, g.cursor)

	g.handleTouches()
	g.handleMouse()
	return nil
}

func (g *Game) handleTouches() {
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if g.touch.active {
			break
		}
		x, y := ebiten.TouchPosition(id)
		g.press(card.Point{X: float64(x), Y: float64(y)}, false, id)
		// Motion permission needs a user gesture; the first touch is one.
		if g.session.NeedsPrompt() {
			g.enableMotion()
		}
	}
	if !g.touch.active || g.touch.mouse {
		return
	}
	if inpututil.IsTouchJustReleased(g.touch.id) {
		g.release()
		return
	}
	x, y := ebiten.TouchPosition(g.touch.id)
	g.card.Drag(float64(x), float64(y))
}

func (g *Game) handleMouse() {
	if !g.touch.active && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.press(g.cursor, true, 0)
	}
	if !g.touch.active || !g.touch.mouse {
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.release()
		return
	}
	g.card.Drag(g.cursor.X, g.cursor.Y)
}

func (g *Game) press(p card.Point, mouse bool, id ebiten.TouchID) {
	t := card.HitTest(g.quad, g.front, p)
	if t == card.TargetNone {
		return
	}
	g.touch = touchState{active: true, mouse: mouse, id: id, target: t}
	g.card.Press(p.X, p.Y, g.clock())
}

// release ends the press. A still press on a back face button runs the
// button instead of flipping the card.
func (g *Game) release() {
	t := g.touch.target
	g.touch = touchState{}

	if (t == card.TargetAddContact || t == card.TargetCopyEmail) && !g.card.Dragging() {
		g.card.CancelTouch()
		if t == card.TargetAddContact {
			g.addContact()
		} else {
			g.copyEmail()
		}
		return
	}
	g.card.Release(g.clock(), t == card.TargetAvatar)
}
