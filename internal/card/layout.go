package card

import "github.com/iburimskiy/vnc/internal/config"

// Target is an interactive region of the card.
type Target int

const (
	TargetNone Target = iota
	TargetCard
	TargetAvatar
	TargetAddContact
	TargetCopyEmail
)

// Rect is a face-local rectangle.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Region returns the face-local bounds of t. TargetNone has an empty rect.
func Region(t Target) Rect {
	switch t {
	case TargetCard:
		return Rect{0, 0, config.CardWidth, config.CardHeight}
	case TargetAvatar:
		cx := float64(config.CardWidth) / 2
		return Rect{cx - config.AvatarRadius, config.AvatarCenterY - config.AvatarRadius,
			cx + config.AvatarRadius, config.AvatarCenterY + config.AvatarRadius}
	case TargetAddContact:
		return Rect{config.ButtonX, config.AddContactY, config.ButtonX + config.ButtonWidth, config.AddContactY + config.ButtonHeight}
	case TargetCopyEmail:
		return Rect{config.ButtonX, config.CopyEmailY, config.ButtonX + config.ButtonWidth, config.CopyEmailY + config.ButtonHeight}
	}
	return Rect{}
}

// HitTest finds the target under screen point p for a card projected to
// q. The avatar only lives on the front, the buttons only on the back.
func HitTest(q [4]Point, front bool, p Point) Target {
	if !Contains(q, p) {
		return TargetNone
	}
	candidates := []Target{TargetAddContact, TargetCopyEmail}
	if front {
		candidates = []Target{TargetAvatar}
	}
	for _, t := range candidates {
		r := Region(t)
		if Contains(Sub(q, config.CardWidth, config.CardHeight, r.X0, r.Y0, r.X1, r.Y1, !front), p) {
			return t
		}
	}
	return TargetCard
}
