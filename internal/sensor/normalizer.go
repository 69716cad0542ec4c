package sensor

import "sync"

// Normalizer holds the latest Signal for the active mode and publishes it
// to subscribers. Readings from the inactive mode are ignored. It is safe
// for use from event callbacks running outside the game loop.
type Normalizer struct {
	mu     sync.RWMutex
	mode   Mode
	orient OrientationRange
	latest Signal
	subs   []func(Signal)
}

func NewNormalizer(r OrientationRange) *Normalizer {
	return &Normalizer{orient: r}
}

func (n *Normalizer) Mode() Mode {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.mode
}

// SetMode switches the input source. The last Signal is kept so the card
// does not snap when switching.
func (n *Normalizer) SetMode(m Mode) {
	n.mu.Lock()
	n.mode = m
	n.mu.Unlock()
}

// Subscribe registers fn to receive every published Signal.
func (n *Normalizer) Subscribe(fn func(Signal)) {
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

// Pointer feeds a cursor position. It reports whether it was accepted.
func (n *Normalizer) Pointer(px, py, w, h float64) bool {
	return n.publish(ModePointer, FromPointer(px, py, w, h))
}

// Orientation feeds a device orientation reading in degrees.
func (n *Normalizer) Orientation(gamma, beta float64) bool {
	n.mu.RLock()
	r := n.orient
	n.mu.RUnlock()
	return n.publish(ModeOrientation, FromOrientation(gamma, beta, r))
}

func (n *Normalizer) publish(from Mode, s Signal) bool {
	n.mu.Lock()
	if n.mode != from {
		n.mu.Unlock()
		return false
	}
	n.latest = s
	subs := n.subs
	n.mu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
	return true
}

// Latest returns the most recent Signal.
func (n *Normalizer) Latest() Signal {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.latest
}
