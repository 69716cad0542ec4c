package card

import (
	"github.com/iburimskiy/vnc/internal/sensor"
	"github.com/iburimskiy/vnc/internal/spring"
)

// Lanyard swings the card like a heavy pendulum hanging from the top of
// the screen, opposite to the device tilt.
type Lanyard struct {
	angle, x, y *spring.Scalar
}

func NewLanyard(fps int) *Lanyard {
	p := spring.Params{Mass: 10, Stiffness: 40, Damping: 20}
	return &Lanyard{
		angle: spring.NewScalar(fps, p),
		x:     spring.NewScalar(fps, p),
		y:     spring.NewScalar(fps, p),
	}
}

// Step advances one frame toward the pose for s.
func (l *Lanyard) Step(s sensor.Signal) {
	l.angle.SetTarget(s.X * -45)
	l.x.SetTarget(s.X * 20)
	l.y.SetTarget(s.Y * 20)
	l.angle.Step()
	l.x.Step()
	l.y.Step()
}

// Pose returns the pendulum angle in degrees and the parallax shift.
func (l *Lanyard) Pose() (angle float64, shift Point) {
	return l.angle.Value(), Point{l.x.Value(), l.y.Value()}
}
