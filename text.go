package rm690b0

import (
	"periph.io/x/devices/v3/rm690b0/glyph"
)

// SetFont selects the built-in font used by Text. Unknown ids select
// glyph.Font8x8.
func (d *Dev) SetFont(id glyph.ID) {
	d.font = glyph.Lookup(id)
}

// Font returns the font used by Text.
func (d *Dev) Font() *glyph.Font {
	return d.font
}

// Text draws s into the back buffer with the current font and returns the
// x coordinate after the last character.
func (d *Dev) Text(x, y int, s string, st glyph.Style) int {
	return glyph.Draw(d.back(), d.font, x, y, s, st)
}

// DrawText draws s into the back buffer with font f.
func (d *Dev) DrawText(x, y int, s string, f *glyph.Font, st glyph.Style) int {
	if f == nil {
		f = d.font
	}
	return glyph.Draw(d.back(), f, x, y, s, st)
}
