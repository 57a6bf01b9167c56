package glyph

import "periph.io/x/devices/v3/rm690b0/image565"

// Setter is the pixel sink text is rendered into. It must clip.
type Setter interface {
	SetRGB565(x, y int, c image565.Color)
}

// Style is the per-call rendering style.
type Style struct {
	FG image565.Color
	BG image565.Color

	// Transparent leaves pixels under unset glyph bits untouched. BG is
	// ignored when set.
	Transparent bool
}

// Draw renders s left to right with its top-left corner at (x, y) and
// returns the x coordinate following the last character. There is no
// wrapping; characters outside dst are clipped by dst.
func Draw(dst Setter, f *Font, x, y int, s string, st Style) int {
	for _, r := range s {
		drawGlyph(dst, f, x, y, f.Glyph(r), st)
		x += f.W
	}
	return x
}

func drawGlyph(dst Setter, f *Font, x, y int, g []byte, st Style) {
	for row := 0; row < f.H; row++ {
		for col := 0; col < f.W; col++ {
			if f.Bit(g, col, row) {
				dst.SetRGB565(x+col, y+row, st.FG)
			} else if !st.Transparent {
				dst.SetRGB565(x+col, y+row, st.BG)
			}
		}
	}
}

// Measure returns the size in pixels of s rendered with f.
func Measure(f *Font, s string) (w, h int) {
	n := 0
	for range s {
		n++
	}
	return n * f.W, f.H
}
