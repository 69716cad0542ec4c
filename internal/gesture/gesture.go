// Package gesture classifies touch input on the card and counts the
// repeated-tap easter egg.
package gesture

import (
	"math"
	"time"

	"github.com/iburimskiy/vnc/internal/config"
)

type Kind int

const (
	None Kind = iota
	Tap
	Swipe
)

func (k Kind) String() string {
	switch k {
	case Tap:
		return "tap"
	case Swipe:
		return "swipe"
	}
	return "none"
}

// Thresholds tune the classifier.
type Thresholds struct {
	SwipeVelocity float64 // px per millisecond
	SwipeDistance float64 // minimum horizontal px
	TapDistance   float64
	TapDuration   time.Duration
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		SwipeVelocity: config.SwipeMinVelocity,
		SwipeDistance: config.SwipeMinDistance,
		TapDistance:   config.TapMaxDistance,
		TapDuration:   config.TapMaxDuration,
	}
}

// Classify labels a finished touch by its displacement and duration.
func Classify(dx, dy float64, elapsed time.Duration, th Thresholds) Kind {
	dist := math.Hypot(dx, dy)
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 1 {
		ms = 1
	}
	if dist/ms > th.SwipeVelocity && math.Abs(dx) > th.SwipeDistance && math.Abs(dx) > math.Abs(dy) {
		return Swipe
	}
	if dist <= th.TapDistance && elapsed <= th.TapDuration {
		return Tap
	}
	return None
}

// Result describes a finished touch.
type Result struct {
	Kind    Kind
	DX, DY  float64
	Elapsed time.Duration
}

// Tracker follows one touch from press to release.
type Tracker struct {
	th Thresholds

	active   bool
	dragging bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	startAt  time.Time
}

func NewTracker(th Thresholds) *Tracker {
	return &Tracker{th: th}
}

func (t *Tracker) Begin(x, y float64, at time.Time) {
	t.active = true
	t.dragging = false
	t.startX, t.startY = x, y
	t.lastX, t.lastY = x, y
	t.startAt = at
}

// Move records the current position and returns the displacement from
// the press point. Leaving the tap radius turns the touch into a drag.
func (t *Tracker) Move(x, y float64) (dx, dy float64) {
	if !t.active {
		return 0, 0
	}
	t.lastX, t.lastY = x, y
	dx, dy = x-t.startX, y-t.startY
	if math.Hypot(dx, dy) > t.th.TapDistance {
		t.dragging = true
	}
	return dx, dy
}

// End finishes the touch at the last recorded position.
func (t *Tracker) End(at time.Time) Result {
	if !t.active {
		return Result{}
	}
	t.active = false
	t.dragging = false
	r := Result{DX: t.lastX - t.startX, DY: t.lastY - t.startY, Elapsed: at.Sub(t.startAt)}
	r.Kind = Classify(r.DX, r.DY, r.Elapsed, t.th)
	return r
}

// Cancel drops the touch without classifying it.
func (t *Tracker) Cancel() {
	t.active = false
	t.dragging = false
}

func (t *Tracker) Active() bool { return t.active }

// Dragging reports whether the active touch has left the tap radius.
func (t *Tracker) Dragging() bool { return t.active && t.dragging }
