// Package glyph holds fixed-size monochrome bitmap fonts and renders text
// with them.
//
// A font table covers printable ASCII (0x20-0x7E) with 95 glyphs. Each glyph
// is H rows of ceil(W/8) bytes; bit 7 of a byte is the leftmost of its eight
// pixels and a set bit is foreground.
package glyph

import (
	"errors"
	"fmt"
)

// Codepoint range covered by a font table.
const (
	FirstCodepoint = 0x20
	LastCodepoint  = 0x7E
	NumGlyphs      = LastCodepoint - FirstCodepoint + 1

	// Fallback replaces codepoints outside the table.
	Fallback = '?'
)

// ErrTableSize is returned by New when the glyph data length does not match
// the font dimensions.
var ErrTableSize = errors.New("glyph: table size does not match dimensions")

// Font is an immutable fixed-width bitmap font.
type Font struct {
	Name string
	W, H int

	rowBytes int
	data     []byte
}

// New wraps a raw glyph table. data must hold exactly NumGlyphs glyphs of
// H*ceil(W/8) bytes each and is not copied.
func New(name string, w, h int, data []byte) (*Font, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("glyph: invalid font size %dx%d", w, h)
	}
	rb := (w + 7) / 8
	if want := NumGlyphs * h * rb; len(data) != want {
		return nil, fmt.Errorf("%w: %q %dx%d needs %d bytes, got %d", ErrTableSize, name, w, h, want, len(data))
	}
	return &Font{Name: name, W: w, H: h, rowBytes: rb, data: data}, nil
}

// RowBytes returns the number of bytes per glyph row.
func (f *Font) RowBytes() int {
	return f.rowBytes
}

// Advance returns the horizontal cursor advance per character.
func (f *Font) Advance() int {
	return f.W
}

// Index returns the table index for r. Codepoints outside the table map to
// the index of Fallback.
func (f *Font) Index(r rune) int {
	if r < FirstCodepoint || r > LastCodepoint {
		r = Fallback
	}
	return int(r - FirstCodepoint)
}

// Glyph returns the bitmap for r.
func (f *Font) Glyph(r rune) []byte {
	n := f.H * f.rowBytes
	i := f.Index(r) * n
	return f.data[i : i+n : i+n]
}

// Bit reports whether pixel (x, y) of bitmap g is set.
func (f *Font) Bit(g []byte, x, y int) bool {
	return g[y*f.rowBytes+x/8]&(0x80>>uint(x%8)) != 0
}

func (f *Font) String() string {
	return fmt.Sprintf("%s %dx%d", f.Name, f.W, f.H)
}
