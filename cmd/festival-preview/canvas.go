package main

import (
	"image/color"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/iburimskiy/vnc/internal/particle"
)

// Pixels per terminal cell; cells are roughly twice as tall as wide.
const (
	cellW = 8
	cellH = 16
)

// cell is the brightest color painted into one terminal cell this frame.
type cell struct {
	clr   color.NRGBA
	cover float64
}

// cellCanvas is a particle.Canvas that rasterizes onto a cols by rows grid.
type cellCanvas struct {
	cols, rows int
	cells      []cell
}

func newCellCanvas(cols, rows int) *cellCanvas {
	c := &cellCanvas{}
	c.resize(cols, rows)
	return c
}

func (c *cellCanvas) resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	c.cells = make([]cell, c.cols*c.rows)
}

// size is the drawing surface in particle pixels.
func (c *cellCanvas) size() (w, h float64) {
	return float64(c.cols * cellW), float64(c.rows * cellH)
}

func (c *cellCanvas) Clear() {
	clear(c.cells)
}

func (c *cellCanvas) FillCircle(center particle.Vec, r float64, clr color.NRGBA) {
	// Area of the disc relative to one cell, capped at a full cell.
	cover := math.Min(1, math.Pi*r*r/(cellW*cellH)) * float64(clr.A) / 255
	x0, y0 := c.cellAt(center.X-r, center.Y-r)
	x1, y1 := c.cellAt(center.X+r, center.Y+r)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.paint(x, y, clr, cover)
		}
	}
}

// FillPolygon paints the cell under the centroid; terminal cells are too
// coarse to show the outline.
func (c *cellCanvas) FillPolygon(pts []particle.Vec, clr color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	var sum particle.Vec
	for _, p := range pts {
		sum = sum.Add(p)
	}
	mid := sum.Scale(1 / float64(len(pts)))
	x, y := c.cellAt(mid.X, mid.Y)
	c.paint(x, y, clr, float64(clr.A)/255)
}

func (c *cellCanvas) cellAt(px, py float64) (int, int) {
	return int(math.Floor(px / cellW)), int(math.Floor(py / cellH))
}

func (c *cellCanvas) paint(x, y int, clr color.NRGBA, cover float64) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows || cover <= 0 {
		return
	}
	i := y*c.cols + x
	if cover > c.cells[i].cover {
		c.cells[i] = cell{clr: clr, cover: cover}
	}
}

func (c *cellCanvas) at(x, y int) cell {
	return c.cells[y*c.cols+x]
}

// glyph picks a character whose ink roughly matches the coverage.
func glyph(cover float64) rune {
	switch {
	case cover <= 0:
		return ' '
	case cover < 0.15:
		return '.'
	case cover < 0.35:
		return '*'
	case cover < 0.7:
		return '▒'
	default:
		return '█'
	}
}

type labelCell struct {
	col int
	r   rune
}

// layoutLabel places s on screen columns starting at col, advancing by each
// rune's display width. Zero-width runes are dropped.
func layoutLabel(s string, col int) []labelCell {
	var out []labelCell
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		out = append(out, labelCell{col: col, r: r})
		col += w
	}
	return out
}
