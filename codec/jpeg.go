package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	"periph.io/x/devices/v3/rm690b0/image565"
)

// JPEGDecoder performs entropy and DCT decoding of a baseline JPEG.
//
// On the target this is the hardware JPEG engine. A decoder may return an
// *image565.Image, which is blitted without conversion, or any other image
// whose pixels are converted from RGB888.
type JPEGDecoder interface {
	DecodeJPEG(data []byte) (image.Image, error)
}

// SoftwareJPEG decodes with image/jpeg. It stands in for the hardware
// decoder on hosts that lack one and is roughly an order of magnitude
// slower.
type SoftwareJPEG struct{}

// DecodeJPEG implements JPEGDecoder.
func (SoftwareJPEG) DecodeJPEG(data []byte) (image.Image, error) {
	return jpeg.Decode(bytes.NewReader(data))
}

// DecodeJPEG decodes data with dec and returns the result as RGB565.
func DecodeJPEG(data []byte, dec JPEGDecoder) (*image565.Image, error) {
	if len(data) < 4 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, fmt.Errorf("%w: missing SOI marker", ErrMalformed)
	}
	if dec == nil {
		dec = SoftwareJPEG{}
	}
	src, err := dec.DecodeJPEG(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}
	if img, ok := src.(*image565.Image); ok {
		return img, nil
	}
	img := image565.New(image.Rect(0, 0, b.Dx(), b.Dy()))
	row := make([]image565.Color, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		convertRow(row, src, b.Min.X, y)
		img.WriteRow(0, y-b.Min.Y, row)
	}
	return img, nil
}

// convertRow converts one row of src starting at x0 into dst.
func convertRow(dst []image565.Color, src image.Image, x0, y int) {
	switch s := src.(type) {
	case *image.YCbCr:
		for i := range dst {
			c := s.YCbCrAt(x0+i, y)
			r, g, b := color.YCbCrToRGB(c.Y, c.Cb, c.Cr)
			dst[i] = image565.RGB(r, g, b)
		}
	case *image.Gray:
		for i := range dst {
			v := s.GrayAt(x0+i, y).Y
			dst[i] = image565.RGB(v, v, v)
		}
	case *image.RGBA:
		for i := range dst {
			c := s.RGBAAt(x0+i, y)
			dst[i] = image565.RGB(c.R, c.G, c.B)
		}
	default:
		for i := range dst {
			dst[i] = image565.Model.Convert(src.At(x0+i, y)).(image565.Color)
		}
	}
}

// BlitJPEG decodes data with dec and writes it to dst with its top-left
// corner at (x, y). The image is fully decoded before the first row is
// written.
func BlitJPEG(dst RowWriter, x, y int, data []byte, dec JPEGDecoder) (image.Rectangle, error) {
	img, err := DecodeJPEG(data, dec)
	if err != nil {
		return image.Rectangle{}, err
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for j := 0; j < h; j++ {
		dst.WriteRow(x, y+j, img.Row(img.Rect.Min.Y+j))
	}
	return image.Rect(x, y, x+w, y+h), nil
}
