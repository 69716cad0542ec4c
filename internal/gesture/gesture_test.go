package gesture

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestClassify(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		name    string
		dx, dy  float64
		elapsed time.Duration
		want    Kind
	}{
		{"fast horizontal swipe", 80, 0, ms(150), Swipe},
		{"fast swipe left", -120, 20, ms(200), Swipe},
		{"tap", 5, 0, ms(100), Tap},
		{"tap with jitter", 3, 4, ms(250), Tap},
		{"slow drag", 80, 0, ms(1000), None},
		{"vertical flick", 10, 120, ms(100), None},
		{"short flick", 30, 0, ms(20), None},
		{"long press", 2, 2, ms(800), None},
		{"zero duration tap", 0, 0, 0, Tap},
	}
	for _, tt := range tests {
		if got := Classify(tt.dx, tt.dy, tt.elapsed, th); got != tt.want {
			t.Errorf("%s: Classify = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTracker(t *testing.T) {
	tr := NewTracker(DefaultThresholds())

	tr.Begin(100, 100, t0)
	tr.Move(140, 102)
	if !tr.Dragging() {
		t.Error("40px move should be a drag")
	}
	tr.Move(180, 100)
	r := tr.End(t0.Add(ms(150)))
	if r.Kind != Swipe || r.DX != 80 {
		t.Errorf("swipe result %+v", r)
	}
	if tr.Active() || tr.Dragging() {
		t.Error("tracker still active after End")
	}

	tr.Begin(10, 10, t0)
	tr.Move(15, 10)
	if tr.Dragging() {
		t.Error("5px is still a tap")
	}
	if r := tr.End(t0.Add(ms(100))); r.Kind != Tap {
		t.Errorf("tap result %+v", r)
	}

	tr.Begin(0, 0, t0)
	tr.Move(80, 0)
	if r := tr.End(t0.Add(ms(1000))); r.Kind != None {
		t.Errorf("slow drag result %+v", r)
	}

	if r := tr.End(t0); r.Kind != None {
		t.Errorf("End without Begin = %+v", r)
	}
	if dx, dy := tr.Move(5, 5); dx != 0 || dy != 0 {
		t.Error("Move without Begin should be ignored")
	}
}

func TestEasterEggTriggersOnce(t *testing.T) {
	e := NewEasterEgg(5, 2*time.Second, 5*time.Second)
	triggers := 0
	for i := 0; i < 6; i++ {
		if e.Tap(t0.Add(ms(200 * i))) {
			triggers++
			if i != 4 {
				t.Errorf("triggered on tap %d", i+1)
			}
		}
	}
	if triggers != 1 {
		t.Fatalf("triggered %d times", triggers)
	}
	if !e.Exploded() || e.Count() != 1 {
		t.Errorf("exploded %v count %d", e.Exploded(), e.Count())
	}
}

func TestEasterEggCountResetsAfterWindow(t *testing.T) {
	e := NewEasterEgg(5, 2*time.Second, 5*time.Second)
	for i := 0; i < 4; i++ {
		e.Tap(t0.Add(ms(100 * i)))
	}
	if e.Update(t0.Add(ms(300 + 2000))) {
		t.Error("nothing to revert")
	}
	if e.Count() != 0 {
		t.Fatalf("count %d after idle window", e.Count())
	}
	if e.Tap(t0.Add(ms(2400))) {
		t.Error("single tap after reset triggered")
	}
}

func TestEasterEggRollingWindow(t *testing.T) {
	e := NewEasterEgg(5, 2*time.Second, 5*time.Second)
	// Taps 1.5s apart keep the count alive.
	var fired bool
	for i := 0; i < 5; i++ {
		fired = e.Tap(t0.Add(ms(1500 * i)))
	}
	if !fired {
		t.Error("taps inside the rolling window should trigger")
	}
}

func TestEasterEggRevertsAndSupersedes(t *testing.T) {
	e := NewEasterEgg(5, 2*time.Second, 5*time.Second)
	tapBurst := func(at time.Time) bool {
		var fired bool
		for i := 0; i < 5; i++ {
			fired = e.Tap(at.Add(ms(10 * i)))
		}
		return fired
	}
	if !tapBurst(t0) {
		t.Fatal("first burst did not fire")
	}
	first := t0.Add(ms(40))

	second := first.Add(3 * time.Second)
	if !tapBurst(second.Add(-ms(40))) {
		t.Fatal("second burst did not fire")
	}

	// The first revert deadline has passed, but the second burst replaced it.
	if e.Update(first.Add(5 * time.Second)) {
		t.Fatal("stale revert fired")
	}
	if !e.Exploded() {
		t.Fatal("explosion ended early")
	}
	if !e.Update(second.Add(5 * time.Second)) {
		t.Fatal("revert did not fire")
	}
	if e.Exploded() {
		t.Fatal("still exploded")
	}
}

func TestEasterEggReset(t *testing.T) {
	e := NewEasterEgg(5, 2*time.Second, 5*time.Second)
	for i := 0; i < 5; i++ {
		e.Tap(t0)
	}
	e.Reset()
	if e.Exploded() || e.Update(t0.Add(time.Hour)) {
		t.Error("revert fired after Reset")
	}
}
