package card

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/iburimskiy/vnc/internal/log"
)

// PatternSource provides the tile repeated across the holographic layer.
type PatternSource interface {
	Name() string
	Load() (image.Image, error)
}

// FileSource loads a PNG tile from disk.
type FileSource string

func (f FileSource) Name() string { return "file:" + string(f) }

func (f FileSource) Load() (image.Image, error) {
	if f == "" {
		return nil, fmt.Errorf("no pattern path")
	}
	r, err := os.Open(string(f))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("empty pattern %s", f)
	}
	return img, nil
}

// LogoSource draws the "N" logo tile: two stems joined by a diagonal,
// shaded from black to blue across the tile.
type LogoSource struct {
	Size int
}

func (LogoSource) Name() string { return "logo" }

func (l LogoSource) Load() (image.Image, error) {
	n := l.Size
	if n <= 0 {
		n = 120
	}
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	s := float64(n)
	stem := s * 0.16
	left, right := s*0.2, s*0.8
	top, bottom := s*0.15, s*0.85
	for y := 0; y < n; y++ {
		fy := float64(y) + 0.5
		if fy < top || fy > bottom {
			continue
		}
		// Diagonal runs from the top of the left stem to the bottom of the right.
		t := (fy - top) / (bottom - top)
		diag := left + t*(right-left-stem)
		for x := 0; x < n; x++ {
			fx := float64(x) + 0.5
			inLeft := fx >= left && fx <= left+stem
			inRight := fx >= right-stem && fx <= right
			inDiag := fx >= diag && fx <= diag+stem
			if !inLeft && !inRight && !inDiag {
				continue
			}
			k := fx / s
			img.SetNRGBA(x, y, color.NRGBA{R: 0, G: uint8(7 * k), B: uint8(255 * k), A: 255})
		}
	}
	return img, nil
}

// ResolvePattern returns the first source that loads, falling back to the
// built-in logo tile.
func ResolvePattern(sources ...PatternSource) image.Image {
	for _, src := range sources {
		img, err := src.Load()
		if err == nil {
			log.Debug("holo pattern loaded", "source", src.Name())
			return img
		}
		log.Warn("holo pattern unavailable, trying next", "source", src.Name(), "err", err)
	}
	img, _ := LogoSource{}.Load()
	return img
}
