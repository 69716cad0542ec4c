package sensor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/iburimskiy/vnc/internal/log"
)

// OrientationSource is the platform orientation API.
type OrientationSource interface {
	// TouchCapable reports whether the device has a touch screen.
	TouchCapable() bool
	// NeedsPermission reports whether orientation data must be unlocked by
	// an explicit user gesture.
	NeedsPermission() bool
	RequestPermission(ctx context.Context) error
	// Listen attaches fn to orientation events until stop is called.
	Listen(fn func(gamma, beta float64)) (stop func(), err error)
}

// Session decides which input mode drives the Normalizer and owns the
// orientation listener for its lifetime.
type Session struct {
	norm *Normalizer
	src  OrientationSource

	mu   sync.Mutex
	perm Permission
	stop func()
}

func NewSession(n *Normalizer, src OrientationSource) *Session {
	return &Session{norm: n, src: src, perm: PermissionPending}
}

// Start applies the platform selection policy. Devices that need a prompt
// stay in pointer mode until EnableMotion succeeds.
func (s *Session) Start() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	touch := s.src.TouchCapable()
	if touch && !s.src.NeedsPermission() {
		s.perm = PermissionNotRequired
	}
	mode := SelectMode(touch, s.perm)
	if mode == ModeOrientation {
		if err := s.attachLocked(); err != nil {
			log.Warn("orientation listener unavailable", "err", err)
			mode = ModePointer
		}
	}
	s.norm.SetMode(mode)
	log.Info("sensor mode selected", "mode", mode, "touch", touch)
	return mode
}

// NeedsPrompt reports whether the "enable motion" action should be offered.
func (s *Session) NeedsPrompt() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.TouchCapable() && s.perm == PermissionPending
}

func (s *Session) Permission() Permission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.perm
}

// EnableMotion requests orientation permission and, on grant, switches the
// Normalizer to orientation mode. On failure the session stays in pointer
// mode and the error is returned for display. Only an explicit refusal
// (ErrPermissionDenied) withdraws the prompt; other failures can be retried.
func (s *Session) EnableMotion(ctx context.Context) error {
	if !s.src.TouchCapable() {
		return ErrUnsupported
	}
	err := s.src.RequestPermission(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			s.perm = PermissionDenied
			log.Warn("motion permission refused", "err", err)
			return err
		}
		// No answer (timeout, no user gesture): the prompt stays on offer.
		log.Warn("motion permission request failed", "err", err)
		return fmt.Errorf("request motion permission: %w", err)
	}
	s.perm = PermissionGranted
	if err := s.attachLocked(); err != nil {
		return fmt.Errorf("attach orientation listener: %w", err)
	}
	s.norm.SetMode(ModeOrientation)
	log.Info("motion permission granted")
	return nil
}

func (s *Session) attachLocked() error {
	if s.stop != nil {
		return nil
	}
	stop, err := s.src.Listen(func(gamma, beta float64) {
		s.norm.Orientation(gamma, beta)
	})
	if err != nil {
		return err
	}
	s.stop = stop
	return nil
}

// Close removes the orientation listener. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}
