package sensor

import (
	"context"
	"errors"
	"math"
	"testing"
)

var testRange = OrientationRange{Range: 45, RestBeta: 45}

func TestFromPointerWithinUnit(t *testing.T) {
	const w, h = 1024, 640
	for px := 0.0; px <= w; px += 16 {
		for py := 0.0; py <= h; py += 16 {
			s := FromPointer(px, py, w, h)
			if math.Abs(s.X) > 1 || math.Abs(s.Y) > 1 {
				t.Fatalf("FromPointer(%v, %v) = %+v out of range", px, py, s)
			}
		}
	}
}

func TestFromPointerLinear(t *testing.T) {
	tests := []struct {
		px, py float64
		want   Signal
	}{
		{0, 0, Signal{-1, -1}},
		{512, 320, Signal{0, 0}},
		{1024, 640, Signal{1, 1}},
		{256, 480, Signal{-0.5, 0.5}},
		{-300, 9000, Signal{-1, 1}},
	}
	for _, tt := range tests {
		got := FromPointer(tt.px, tt.py, 1024, 640)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("FromPointer(%v, %v) = %+v, want %+v", tt.px, tt.py, got, tt.want)
		}
	}
	if got := FromPointer(10, 10, 0, 0); got != (Signal{}) {
		t.Errorf("zero viewport = %+v", got)
	}
}

func TestFromOrientationClamps(t *testing.T) {
	tests := []struct {
		gamma, beta float64
		want        Signal
	}{
		{90, 180, Signal{1, 1}},
		{-90, -180, Signal{-1, -1}},
		{46, 45, Signal{1, 0}},
		{22.5, 67.5, Signal{0.5, 0.5}},
		{math.NaN(), 45, Signal{0, 0}},
	}
	for _, tt := range tests {
		got := FromOrientation(tt.gamma, tt.beta, testRange)
		if got != tt.want {
			t.Errorf("FromOrientation(%v, %v) = %+v, want %+v", tt.gamma, tt.beta, got, tt.want)
		}
	}
}

func TestTilt(t *testing.T) {
	tx, ty := Signal{X: 1, Y: -0.5}.Tilt(15)
	if tx != -7.5 || ty != -15 {
		t.Errorf("Tilt = %v, %v", tx, ty)
	}
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		touch bool
		perm  Permission
		want  Mode
	}{
		{false, PermissionNotRequired, ModePointer},
		{false, PermissionGranted, ModePointer},
		{true, PermissionNotRequired, ModeOrientation},
		{true, PermissionGranted, ModeOrientation},
		{true, PermissionPending, ModePointer},
		{true, PermissionDenied, ModePointer},
	}
	for _, tt := range tests {
		if got := SelectMode(tt.touch, tt.perm); got != tt.want {
			t.Errorf("SelectMode(%v, %v) = %v, want %v", tt.touch, tt.perm, got, tt.want)
		}
	}
}

func TestNormalizerIgnoresInactiveMode(t *testing.T) {
	n := NewNormalizer(testRange)
	var got []Signal
	n.Subscribe(func(s Signal) { got = append(got, s) })

	if n.Orientation(45, 45) {
		t.Error("orientation accepted in pointer mode")
	}
	if !n.Pointer(1024, 0, 1024, 640) {
		t.Error("pointer rejected in pointer mode")
	}
	if len(got) != 1 || got[0] != (Signal{1, -1}) {
		t.Errorf("published %+v", got)
	}

	n.SetMode(ModeOrientation)
	if n.Pointer(0, 0, 1024, 640) {
		t.Error("pointer accepted in orientation mode")
	}
	if n.Latest() != (Signal{1, -1}) {
		t.Errorf("Latest changed by rejected reading: %+v", n.Latest())
	}
}

type fakeSource struct {
	touch, needs bool
	permErr      error
	listening    int
	emit         func(gamma, beta float64)
}

func (f *fakeSource) TouchCapable() bool                        { return f.touch }
func (f *fakeSource) NeedsPermission() bool                     { return f.needs }
func (f *fakeSource) RequestPermission(_ context.Context) error { return f.permErr }
func (f *fakeSource) Listen(fn func(gamma, beta float64)) (func(), error) {
	f.listening++
	f.emit = fn
	return func() { f.listening--; f.emit = nil }, nil
}

func TestSessionDesktopUsesPointer(t *testing.T) {
	n := NewNormalizer(testRange)
	s := NewSession(n, &fakeSource{})
	if m := s.Start(); m != ModePointer {
		t.Fatalf("Start = %v", m)
	}
	if s.NeedsPrompt() {
		t.Error("desktop should not prompt")
	}
	if err := s.EnableMotion(context.Background()); !errors.Is(err, ErrUnsupported) {
		t.Errorf("EnableMotion err = %v", err)
	}
}

func TestSessionTouchWithoutPrompt(t *testing.T) {
	n := NewNormalizer(testRange)
	src := &fakeSource{touch: true}
	s := NewSession(n, src)
	if m := s.Start(); m != ModeOrientation {
		t.Fatalf("Start = %v", m)
	}
	src.emit(-90, 45)
	if n.Latest() != (Signal{-1, 0}) {
		t.Errorf("Latest = %+v", n.Latest())
	}
	s.Close()
	s.Close()
	if src.listening != 0 {
		t.Errorf("listener leaked: %d", src.listening)
	}
}

func TestSessionPermissionGranted(t *testing.T) {
	n := NewNormalizer(testRange)
	src := &fakeSource{touch: true, needs: true}
	s := NewSession(n, src)
	if m := s.Start(); m != ModePointer {
		t.Fatalf("Start = %v", m)
	}
	if !s.NeedsPrompt() {
		t.Fatal("expected prompt")
	}
	if err := s.EnableMotion(context.Background()); err != nil {
		t.Fatalf("EnableMotion: %v", err)
	}
	if n.Mode() != ModeOrientation || s.Permission() != PermissionGranted {
		t.Errorf("mode %v perm %v", n.Mode(), s.Permission())
	}
	if s.NeedsPrompt() {
		t.Error("prompt still offered after grant")
	}
	s.Close()
}

func TestSessionPermissionDenied(t *testing.T) {
	n := NewNormalizer(testRange)
	src := &fakeSource{touch: true, needs: true, permErr: ErrPermissionDenied}
	s := NewSession(n, src)
	s.Start()
	err := s.EnableMotion(context.Background())
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v", err)
	}
	if n.Mode() != ModePointer || src.listening != 0 {
		t.Errorf("degraded mode broken: mode %v listening %d", n.Mode(), src.listening)
	}
	if s.Permission() != PermissionDenied || s.NeedsPrompt() {
		t.Errorf("refusal should withdraw the prompt: perm %v", s.Permission())
	}
}

func TestSessionRequestFailureCanBeRetried(t *testing.T) {
	n := NewNormalizer(testRange)
	src := &fakeSource{touch: true, needs: true, permErr: context.DeadlineExceeded}
	s := NewSession(n, src)
	s.Start()

	err := s.EnableMotion(context.Background())
	if err == nil || errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("err = %v, want a retryable failure", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("cause lost: %v", err)
	}
	if !s.NeedsPrompt() || s.Permission() != PermissionPending {
		t.Fatalf("prompt withdrawn after a failed request: perm %v", s.Permission())
	}

	src.permErr = nil
	if err := s.EnableMotion(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if n.Mode() != ModeOrientation || src.listening != 1 {
		t.Errorf("retry did not attach: mode %v listening %d", n.Mode(), src.listening)
	}
	s.Close()
}
