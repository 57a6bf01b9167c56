package rm690b0

import (
	"image"

	"periph.io/x/devices/v3/rm690b0/codec"
)

// DrawBMP draws an uncompressed 24-bit BMP file into the back buffer with
// its top-left corner at (x, y) and returns the covered rectangle before
// clipping.
//
// The file is validated before any pixel is written; on error the back
// buffer is unchanged.
func (d *Dev) DrawBMP(x, y int, data []byte) (image.Rectangle, error) {
	return codec.BlitBMP(d.back(), x, y, data)
}

// DrawJPEG decodes a baseline JPEG with the decoder from Opts.JPEG and
// draws it into the back buffer at (x, y).
//
// The image is fully decoded first; on error the back buffer is unchanged.
func (d *Dev) DrawJPEG(x, y int, data []byte) (image.Rectangle, error) {
	return codec.BlitJPEG(d.back(), x, y, data, d.opts.JPEG)
}
