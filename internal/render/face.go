package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/vnc/internal/card"
	"github.com/iburimskiy/vnc/internal/config"
	"github.com/iburimskiy/vnc/internal/particle"
)

var (
	faceColor   = color.RGBA{R: 18, G: 18, B: 28, A: 255}
	accentColor = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 170, B: 190, A: 255}
	avatarColor = color.RGBA{R: 40, G: 44, B: 66, A: 255}
)

const (
	bandCount      = 24
	skillLineRunes = 44
)

// drawHolo paints the pattern layers, the iridescent band and the glare.
func (r *Renderer) drawHolo(dst *ebiten.Image, o card.Overlay, level float64) {
	if r.pattern != nil {
		var cm colorm.ColorM
		c := o.Contrast
		cm.Scale(c, c, c, 1)
		cm.Translate(0.5*(1-c), 0.5*(1-c), 0.5*(1-c), 0)
		cm.Scale(o.Brightness, o.Brightness, o.Brightness, 1)
		r.tile(dst, cm, o.DepthOffset, 0, 0.08)
		r.tile(dst, cm, o.ParallaxOffset, o.PatternAngle, 0.12)
	}

	// Iridescent strips; their hues slide with the gradient position.
	w, h := float64(config.CardWidth), float64(config.CardHeight)
	sw := w / bandCount
	alpha := o.IridescenceOpacity * (0.18 + 0.2*level)
	for i := 0; i < bandCount; i++ {
		hue := float64(i)/bandCount*360 + o.GradientPos.X*3.6 + o.GradientPos.Y*1.8
		clr := particle.HSV(hue, 0.6, 1, alpha)
		vector.DrawFilledRect(dst, float32(float64(i)*sw), 0, float32(sw)+1, float32(h), clr, false)
	}

	// Glare: a slanted white band that slides with the tilt.
	if o.GlareOpacity > 0 {
		cx := w * (0.5 + o.GlareShift)
		half := w * 0.25
		pts := []particle.Vec{
			{X: cx - half - 60, Y: 0}, {X: cx + half - 60, Y: 0},
			{X: cx + half + 60, Y: h}, {X: cx - half + 60, Y: h},
		}
		r.fillPolygon(dst, pts, color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * math.Min(1, o.GlareOpacity*0.5))})
	}

	border := math.Min(1, o.BorderAlpha+level*0.6)
	bc := color.NRGBA{R: accentColor.R, G: accentColor.G, B: accentColor.B, A: uint8(255 * border)}
	vector.StrokeRect(dst, 1, 1, float32(w)-2, float32(h)-2, 2, bc, true)
}

// tile repeats the pattern across dst, rotated about the face center.
func (r *Renderer) tile(dst *ebiten.Image, cm colorm.ColorM, off card.Point, angle, alpha float64) {
	pb := r.pattern.Bounds()
	pw, ph := float64(pb.Dx()), float64(pb.Dy())
	w, h := float64(config.CardWidth), float64(config.CardHeight)
	reach := math.Hypot(w, h)
	cm.Scale(1, 1, 1, alpha)
	for y := -reach; y < reach; y += ph {
		for x := -reach; x < reach; x += pw {
			op := &colorm.DrawImageOptions{Filter: ebiten.FilterLinear}
			op.GeoM.Translate(x+math.Mod(off.X, pw), y+math.Mod(off.Y, ph))
			op.GeoM.Rotate(angle * math.Pi / 180)
			op.GeoM.Translate(w/2, h/2)
			colorm.DrawImage(dst, r.pattern, cm, op)
		}
	}
}

// drawFront renders the front face into r.front.
func (r *Renderer) drawFront(s Scene) {
	dst := r.front
	dst.Fill(faceColor)
	r.drawHolo(dst, s.Overlay, s.Level)

	w := float64(config.CardWidth)
	cx := w / 2

	p := s.Pieces[card.Avatar]
	ax, ay := cx+p.DX, config.AvatarCenterY+p.DY
	rad := config.AvatarRadius * p.Scale
	a := color.NRGBA{R: avatarColor.R, G: avatarColor.G, B: avatarColor.B, A: uint8(255 * p.Opacity)}
	vector.DrawFilledCircle(dst, float32(ax), float32(ay), float32(rad), a, true)
	ring := color.NRGBA{R: accentColor.R, G: accentColor.G, B: accentColor.B, A: uint8(200 * p.Opacity)}
	vector.StrokeCircle(dst, float32(ax), float32(ay), float32(rad), 2, ring, true)
	r.text.draw(dst, s.Profile.Initial(), ax, ay, textOpts{scale: 5 * p.Scale, rotate: p.Rotate, alpha: p.Opacity})

	p = s.Pieces[card.Name]
	r.text.draw(dst, s.Profile.Name, cx+p.DX, 260+p.DY, textOpts{scale: 2.5 * p.Scale, rotate: p.Rotate, alpha: p.Opacity})

	p = s.Pieces[card.Role]
	role := s.Profile.Role
	if s.Profile.Company != "" {
		role += " @ " + s.Profile.Company
	}
	r.text.draw(dst, role, cx+p.DX, 300+p.DY, textOpts{scale: 1.2 * p.Scale, rotate: p.Rotate, clr: accentColor, alpha: p.Opacity})

	r.text.draw(dst, s.Profile.ProjectTitles(), cx, 370, textOpts{clr: mutedColor, alpha: 0.7})

	p = s.Pieces[card.Hint]
	r.text.draw(dst, "TAP TO FLIP", cx+p.DX, 440+p.DY, textOpts{scale: p.Scale, rotate: p.Rotate, clr: mutedColor, alpha: 0.6 * p.Opacity})
}

// drawBack renders the back face into r.back.
func (r *Renderer) drawBack(s Scene) {
	dst := r.back
	dst.Fill(faceColor)
	r.drawHolo(dst, s.Overlay, s.Level)

	cx := float64(config.CardWidth) / 2
	r.text.draw(dst, "Connect", cx, 44, textOpts{scale: 2.5, alpha: 1})

	y := 96.0
	c := s.Profile.Contact
	for _, line := range []string{c.Phone, c.Website, c.Location} {
		if line == "" {
			continue
		}
		r.text.draw(dst, line, cx, y, textOpts{clr: mutedColor, alpha: 1})
		y += 22
	}
	y += 12
	for _, so := range s.Profile.Socials {
		r.text.draw(dst, so.Label, cx, y, textOpts{clr: accentColor, alpha: 1})
		y += 22
	}
	y += 6
	for _, line := range s.Profile.SkillLines(skillLineRunes) {
		r.text.draw(dst, line, cx, y, textOpts{clr: mutedColor, alpha: 0.8})
		y += 18
	}

	r.drawButton(dst, card.TargetAddContact, "Add Contact", s.Hover == card.TargetAddContact)
	r.drawButton(dst, card.TargetCopyEmail, "Copy Email", s.Hover == card.TargetCopyEmail)
}

func (r *Renderer) drawButton(dst *ebiten.Image, t card.Target, label string, hovered bool) {
	b := card.Region(t)
	bg := color.RGBA{R: 100, G: 120, B: 160, A: 255}
	if hovered {
		bg = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	}
	x, y := float32(b.X0), float32(b.Y0)
	w, h := float32(b.X1-b.X0), float32(b.Y1-b.Y0)
	vector.DrawFilledRect(dst, x, y, w, h, bg, false)
	vector.StrokeRect(dst, x, y, w, h, 2, color.RGBA{R: 150, G: 170, B: 200, A: 255}, false)
	r.text.draw(dst, label, (b.X0+b.X1)/2, (b.Y0+b.Y1)/2, textOpts{scale: 1.4, alpha: 1})
}
