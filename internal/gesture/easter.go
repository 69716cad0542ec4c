package gesture

import "time"

// EasterEgg counts rapid taps. Reaching the tap count inside the rolling
// window explodes the card; the explosion reverts after the hold time.
// Deadlines replace timers, so a new explosion always supersedes the
// pending revert and nothing fires after Reset.
type EasterEgg struct {
	need   int
	window time.Duration
	hold   time.Duration

	taps     int
	lastTap  time.Time
	exploded bool
	revertAt time.Time
}

func NewEasterEgg(need int, window, hold time.Duration) *EasterEgg {
	return &EasterEgg{need: need, window: window, hold: hold}
}

// Tap registers a tap at now and reports whether it triggered the
// explosion.
func (e *EasterEgg) Tap(now time.Time) bool {
	e.expire(now)
	e.taps++
	e.lastTap = now
	if e.taps < e.need {
		return false
	}
	e.taps = 0
	e.exploded = true
	e.revertAt = now.Add(e.hold)
	return true
}

// Update advances the deadlines and reports whether the explosion
// reverted at now.
func (e *EasterEgg) Update(now time.Time) bool {
	e.expire(now)
	if e.exploded && !now.Before(e.revertAt) {
		e.exploded = false
		return true
	}
	return false
}

func (e *EasterEgg) expire(now time.Time) {
	if e.taps > 0 && now.Sub(e.lastTap) >= e.window {
		e.taps = 0
	}
}

func (e *EasterEgg) Exploded() bool { return e.exploded }

func (e *EasterEgg) Count() int { return e.taps }

// Reset cancels the count and any pending revert.
func (e *EasterEgg) Reset() {
	e.taps = 0
	e.exploded = false
	e.revertAt = time.Time{}
}
