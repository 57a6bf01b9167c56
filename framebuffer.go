package rm690b0

import (
	"image/color"

	"periph.io/x/devices/v3/rm690b0/image565"
)

// The drawing methods write into the back buffer and never fail: anything
// outside the display is clipped. Call Swap to show the result.

// WritePixel sets the pixel at (x, y).
func (d *Dev) WritePixel(x, y int, c image565.Color) {
	d.back().SetRGB565(x, y, c)
}

// Pixel returns the back buffer pixel at (x, y), or Black outside the
// display.
func (d *Dev) Pixel(x, y int) image565.Color {
	return d.back().RGB565At(x, y)
}

// HLine draws a horizontal line of w pixels starting at (x, y).
func (d *Dev) HLine(x, y, w int, c image565.Color) {
	d.back().HLine(x, y, w, c)
}

// VLine draws a vertical line of h pixels starting at (x, y).
func (d *Dev) VLine(x, y, h int, c image565.Color) {
	d.back().VLine(x, y, h, c)
}

// FillRect fills the w×h rectangle at (x, y).
func (d *Dev) FillRect(x, y, w, h int, c image565.Color) {
	d.back().FillRect(x, y, w, h, c)
}

// Rect draws the outline of the w×h rectangle at (x, y).
func (d *Dev) Rect(x, y, w, h int, c image565.Color) {
	d.back().Outline(x, y, w, h, c)
}

// Line draws a line from (x0, y0) to (x1, y1), both ends included.
func (d *Dev) Line(x0, y0, x1, y1 int, c image565.Color) {
	d.back().Line(x0, y0, x1, y1, c)
}

// Circle draws a circle outline of radius r centered at (cx, cy).
func (d *Dev) Circle(cx, cy, r int, c image565.Color) {
	d.back().Circle(cx, cy, r, c)
}

// FillCircle draws a filled circle of radius r centered at (cx, cy).
func (d *Dev) FillCircle(cx, cy, r int, c image565.Color) {
	d.back().FillCircle(cx, cy, r, c)
}

// Fill sets every pixel of the back buffer to c.
func (d *Dev) Fill(c image565.Color) {
	d.back().Fill(c)
}

// BlitBuffer copies a w×h block of pixels to (x, y).
func (d *Dev) BlitBuffer(x, y, w, h int, pix []image565.Color) {
	d.back().Blit(x, y, w, h, pix)
}

// BlitBytes copies a w×h block of big-endian RGB565 pixels to (x, y).
// Nothing is drawn when b holds fewer than w*h pixels.
func (d *Dev) BlitBytes(x, y, w, h int, b []byte) {
	if w <= 0 || h <= 0 || len(b)/2/w < h {
		return
	}
	row := make([]image565.Color, w)
	for j := 0; j < h; j++ {
		line := b[j*w*2:]
		for i := range row {
			row[i] = image565.Color(line[2*i])<<8 | image565.Color(line[2*i+1])
		}
		d.back().WriteRow(x, y+j, row)
	}
}

// Back returns the back buffer for use with image/draw and other
// draw.Image consumers.
func (d *Dev) Back() *image565.Image {
	return d.back()
}

// Size returns the display size.
func (d *Dev) Size() (x, y int16) {
	return int16(d.rect.Dx()), int16(d.rect.Dy())
}

// SetPixel sets the back buffer pixel at (x, y).
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	d.back().SetRGB565(int(x), int(y), image565.RGB(c.R, c.G, c.B))
}

// Display swaps the buffers and sends the new frame to the panel.
func (d *Dev) Display() error {
	return d.Swap(true)
}
