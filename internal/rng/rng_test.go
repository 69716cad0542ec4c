package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	src := New(7)
	for i := 0; i < 1000; i++ {
		v := Range(src, 2, 5)
		if v < 2 || v >= 5 {
			t.Fatalf("Range out of bounds: %v", v)
		}
		c := Centered(src, 500)
		if c < -250 || c >= 250 {
			t.Fatalf("Centered out of bounds: %v", c)
		}
	}
}
