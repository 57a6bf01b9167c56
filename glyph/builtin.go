package glyph

import (
	"fmt"
	"image/color"
	"sync"

	"golang.org/x/image/font/basicfont"
)

// ID selects one of the built-in fonts.
type ID int

// Built-in fonts.
const (
	Font8x8 ID = iota
	Font16x16
	Font16x24
	Font24x24
	Font24x32
	Font32x32
	Font32x48

	numBuiltin
)

var sizes = [numBuiltin][2]int{
	Font8x8:   {8, 8},
	Font16x16: {16, 16},
	Font16x24: {16, 24},
	Font24x24: {24, 24},
	Font24x32: {24, 32},
	Font32x32: {32, 32},
	Font32x48: {32, 48},
}

var builtin = sync.OnceValue(func() [numBuiltin]*Font {
	var fonts [numBuiltin]*Font
	for id, sz := range sizes {
		fonts[id] = scaleBasic(sz[0], sz[1])
	}
	return fonts
})

// Lookup returns the built-in font for id. Unknown ids select Font8x8.
func Lookup(id ID) *Font {
	if id < 0 || id >= numBuiltin {
		id = Font8x8
	}
	return builtin()[id]
}

// Clamp maps an arbitrary font id to a valid built-in id.
func Clamp(id int) ID {
	if id < 0 || id >= int(numBuiltin) {
		return Font8x8
	}
	return ID(id)
}

// scaleBasic builds a w×h table from the 7x13 basicfont bitmap by nearest
// neighbour sampling of the full advance cell.
func scaleBasic(w, h int) *Font {
	src := basicfont.Face7x13
	cellW, cellH := src.Advance, src.Height
	rb := (w + 7) / 8
	data := make([]byte, NumGlyphs*h*rb)
	for i := 0; i < NumGlyphs; i++ {
		g := data[i*h*rb : (i+1)*h*rb]
		for y := 0; y < h; y++ {
			sy := i*cellH + y*cellH/h
			for x := 0; x < w; x++ {
				sx := x * cellW / w
				if sx >= src.Width {
					continue
				}
				if a := color.AlphaModel.Convert(src.Mask.At(sx, sy)).(color.Alpha); a.A >= 0x80 {
					g[y*rb+x/8] |= 0x80 >> uint(x%8)
				}
			}
		}
	}
	f, err := New(fmt.Sprintf("basic%dx%d", w, h), w, h, data)
	if err != nil {
		panic(err)
	}
	return f
}
