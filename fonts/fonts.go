// Package fonts builds the text faces the scene draws with. The glyphs
// come from the bundled Go Regular typeface, so no font files ship with
// the binary.
package fonts

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

// Set caches one face per pixel size.
type Set struct {
	faces map[float64]text.Face
}

// NewSet parses the typeface once and prepares a face for every
// requested size. Duplicate sizes are collapsed.
func NewSet(sizes ...float64) (*Set, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse typeface: %w", err)
	}
	s := &Set{faces: make(map[float64]text.Face, len(sizes))}
	for _, size := range sizes {
		if _, ok := s.faces[size]; ok {
			continue
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("build %vpx face: %w", size, err)
		}
		s.faces[size] = text.NewGoXFace(face)
	}
	return s, nil
}

// Face returns the face registered for size, or the nearest registered
// one, preferring the smaller size when two are equally near. It
// returns nil only for a nil or empty set.
func (s *Set) Face(size float64) text.Face {
	if s == nil {
		return nil
	}
	if f, ok := s.faces[size]; ok {
		return f
	}
	var (
		best     text.Face
		bestSize float64
		diff     = math.Inf(1)
	)
	for sz, f := range s.faces {
		d := math.Abs(sz - size)
		if d < diff || (d == diff && sz < bestSize) {
			best, bestSize, diff = f, sz, d
		}
	}
	return best
}
