package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Debug font cell size.
const (
	glyphW = 6
	glyphH = 16
)

// labels caches one image per string drawn with the debug font so text
// can be scaled, rotated and faded like any other sprite.
type labels map[string]*ebiten.Image

func (l labels) get(s string) *ebiten.Image {
	if img, ok := l[s]; ok {
		return img
	}
	w := len([]rune(s)) * glyphW
	if w == 0 {
		w = 1
	}
	img := ebiten.NewImage(w, glyphH)
	ebitenutil.DebugPrint(img, s)
	l[s] = img
	return img
}

type textOpts struct {
	scale  float64
	rotate float64 // degrees
	clr    color.Color
	alpha  float64
}

// draw centers s on (cx, cy).
func (l labels) draw(dst *ebiten.Image, s string, cx, cy float64, o textOpts) {
	if s == "" || o.alpha <= 0 {
		return
	}
	if o.scale == 0 {
		o.scale = 1
	}
	img := l.get(s)
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(o.scale, o.scale)
	op.GeoM.Rotate(o.rotate * math.Pi / 180)
	op.GeoM.Translate(cx, cy)
	if o.clr != nil {
		op.ColorScale.ScaleWithColor(o.clr)
	}
	op.ColorScale.ScaleAlpha(float32(o.alpha))
	dst.DrawImage(img, op)
}
