// Package image565 provides the RGB565 pixel format used by the RM690B0 panel.
//
// Pixels are stored one uint16 per pixel in row-major order. The bit layout is
// RRRRRGGGGGGBBBBB, which is also the order the panel expects on the wire
// (big-endian, high byte first).
package image565

import (
	"image"
	"image/color"
)

// Color is a 16-bit RGB565 color. There is no alpha channel.
type Color uint16

// Common colors.
const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
	Yellow  Color = 0xFFE0
)

// RGB packs 8-bit channels into a Color by truncating the low bits.
func RGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// RGBA implements color.Color. Each channel is expanded by bit replication
// so that full intensity maps to 0xFFFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 | r8<<8, g8 | g8<<8, b8 | b8<<8, 0xFFFF
}

func toRGB565(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Model converts colors to Color. Alpha is dropped.
var Model = color.ModelFunc(toRGB565)

// Image is an in-memory RGB565 image.
//
// Every drawing method clips to Rect: coordinates outside the image are
// silently dropped and never touch adjacent memory.
type Image struct {
	Pix    []Color         // Pixels, row-major
	Stride int             // Pixels per row
	Rect   image.Rectangle // Image bounds
}

// New returns an Image with the given bounds, all pixels Black.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		panic("image565: negative size")
	}
	return &Image{
		Pix:    make([]Color, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns Model.
func (p *Image) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image.
func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the pixel at (x, y), or Black when out of bounds.
func (p *Image) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Black
	}
	return p.Pix[p.PixOffset(x, y)]
}

// Set implements draw.Image.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(Color))
}

// SetRGB565 sets the pixel at (x, y). Out of bounds writes are ignored.
func (p *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// PixOffset returns the index into Pix of the pixel at (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// Row returns the pixels of row y, or nil when y is out of bounds.
// The slice aliases Pix.
func (p *Image) Row(y int) []Color {
	if y < p.Rect.Min.Y || y >= p.Rect.Max.Y {
		return nil
	}
	i := (y - p.Rect.Min.Y) * p.Stride
	return p.Pix[i : i+p.Rect.Dx()]
}

// CopyFrom copies all pixels of src into p. Both images must have the same
// bounds; otherwise nothing is copied and false is returned.
func (p *Image) CopyFrom(src *Image) bool {
	if src.Rect != p.Rect || src.Stride != p.Stride {
		return false
	}
	copy(p.Pix, src.Pix)
	return true
}
