// Package render draws the card, the backdrop and the particle layer with
// ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/vnc/internal/particle"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is the source for solid triangles; sampling the
	// center pixel avoids bleeding from the edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Layer is a particle.Canvas backed by an ebiten image the size of the
// screen. It is composited over the scene with DrawOn.
type Layer struct {
	img *ebiten.Image

	// Additive composites with a lighter blend, for glowing effects.
	Additive bool

	vs []ebiten.Vertex
	is []uint16
}

func NewLayer() *Layer { return &Layer{} }

// Resize reallocates the backing image when the screen size changes.
func (l *Layer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	if l.img != nil {
		b := l.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		l.img.Deallocate()
	}
	l.img = ebiten.NewImage(w, h)
}

func (l *Layer) Clear() {
	if l.img != nil {
		l.img.Clear()
	}
}

func (l *Layer) FillCircle(c particle.Vec, r float64, clr color.NRGBA) {
	if l.img == nil || r <= 0 || clr.A == 0 {
		return
	}
	vector.DrawFilledCircle(l.img, float32(c.X), float32(c.Y), float32(r), clr, true)
}

func (l *Layer) FillPolygon(pts []particle.Vec, clr color.NRGBA) {
	if l.img == nil {
		return
	}
	l.vs, l.is = fillPolygon(l.img, pts, clr, l.vs, l.is)
}

// fillPolygon fills pts on dst, reusing the vertex and index buffers.
func fillPolygon(dst *ebiten.Image, pts []particle.Vec, clr color.NRGBA, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	if len(pts) < 3 || clr.A == 0 {
		return vs, is
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	vs, is = path.AppendVerticesAndIndicesForFilling(vs[:0], is[:0])
	setColor(vs, clr)
	dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		FillRule:       ebiten.EvenOdd,
		AntiAlias:      true,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	})
	return vs, is
}

// DrawOn composites the layer onto dst.
func (l *Layer) DrawOn(dst *ebiten.Image) {
	if l.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	if l.Additive {
		op.Blend = ebiten.BlendLighter
	}
	dst.DrawImage(l.img, op)
}

// setColor paints every vertex with clr, premultiplied.
func setColor(vs []ebiten.Vertex, clr color.NRGBA) {
	a := float32(clr.A) / 255
	r := float32(clr.R) / 255 * a
	g := float32(clr.G) / 255 * a
	b := float32(clr.B) / 255 * a
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = r, g, b, a
	}
}
