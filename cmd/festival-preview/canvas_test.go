package main

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/vnc/internal/festival"
	"github.com/iburimskiy/vnc/internal/particle"
	"github.com/iburimskiy/vnc/internal/rng"
)

func TestCellCanvasPaintsCells(t *testing.T) {
	c := newCellCanvas(10, 5)
	red := color.NRGBA{R: 255, A: 255}
	c.FillCircle(particle.Vec{X: 20, Y: 20}, 2, red)
	if got := c.at(2, 1); got.clr != red || got.cover <= 0 {
		t.Fatalf("cell (2,1) = %+v", got)
	}
	if c.at(0, 0).cover != 0 {
		t.Error("untouched cell painted")
	}

	// Off-surface shapes are dropped.
	c.FillCircle(particle.Vec{X: -100, Y: -100}, 2, red)
	c.FillPolygon([]particle.Vec{{X: 1000, Y: 1000}, {X: 1010, Y: 1000}, {X: 1000, Y: 1010}}, red)

	c.Clear()
	for y := 0; y < c.rows; y++ {
		for x := 0; x < c.cols; x++ {
			if c.at(x, y).cover != 0 {
				t.Fatalf("cell (%d,%d) survived Clear", x, y)
			}
		}
	}
}

func TestCellCanvasKeepsBrightest(t *testing.T) {
	c := newCellCanvas(4, 4)
	dim := color.NRGBA{B: 255, A: 40}
	bright := color.NRGBA{G: 255, A: 255}
	c.FillPolygon([]particle.Vec{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 16}}, bright)
	c.FillPolygon([]particle.Vec{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 0, Y: 16}}, dim)
	if got := c.at(0, 0).clr; got != bright {
		t.Errorf("cell color = %v, want the brighter paint", got)
	}
}

func TestGlyphRamp(t *testing.T) {
	prev := -1
	ramp := []rune{' ', '.', '*', '▒', '█'}
	for _, cover := range []float64{0, 0.1, 0.3, 0.5, 1} {
		g := glyph(cover)
		i := -1
		for j, r := range ramp {
			if r == g {
				i = j
			}
		}
		if i <= prev {
			t.Errorf("glyph(%v) = %q out of order", cover, g)
		}
		prev = i
	}
}

func TestEngineDrawsIntoCells(t *testing.T) {
	c := newCellCanvas(80, 24)
	e := particle.New(festival.Sparkles, rng.New(7))
	e.Resize(c.size())
	if !e.Start() {
		t.Fatal("engine did not start")
	}
	e.Step()
	e.Draw(c)
	painted := 0
	for _, cl := range c.cells {
		if cl.cover > 0 {
			painted++
		}
	}
	if painted == 0 {
		t.Error("no cells painted")
	}
}

func TestLayoutLabelCountsColumns(t *testing.T) {
	tests := []struct {
		in   string
		want []labelCell
	}{
		{"ab", []labelCell{{1, 'a'}, {2, 'b'}}},
		{"e\u0301x", []labelCell{{1, 'e'}, {2, 'x'}}},
		{"桜x", []labelCell{{1, '桜'}, {3, 'x'}}},
	}
	for _, tt := range tests {
		got := layoutLabel(tt.in, 1)
		if len(got) != len(tt.want) {
			t.Errorf("layoutLabel(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("layoutLabel(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}
