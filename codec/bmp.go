// Package codec turns encoded BMP and JPEG payloads into RGB565 scanlines.
//
// Every decoder validates or decodes its whole input before the first row is
// handed to the destination, so a rejected payload never leaves partial image
// content behind.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"

	"periph.io/x/devices/v3/rm690b0/image565"
)

var (
	// ErrMalformed reports a truncated or inconsistent header or payload.
	ErrMalformed = errors.New("codec: malformed image")
	// ErrUnsupportedDepth reports a BMP bit depth other than 24.
	ErrUnsupportedDepth = errors.New("codec: unsupported bit depth")
	// ErrUnsupportedCompression reports a compressed BMP.
	ErrUnsupportedCompression = errors.New("codec: unsupported compression")
	// ErrDecode reports a failure inside the JPEG decoder.
	ErrDecode = errors.New("codec: decode failed")
)

// RowWriter receives decoded scanlines. Implementations must clip.
type RowWriter interface {
	WriteRow(x, y int, row []image565.Color)
}

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	maxDimension  = 1 << 14
)

// BMPInfo describes a validated BMP payload.
type BMPInfo struct {
	Width, Height int
	TopDown       bool // rows are stored top to bottom
	offset        int  // start of pixel data
	stride        int  // bytes per stored row, padded to 4
}

// DecodeBMPConfig validates a BMP header. Only 24-bit uncompressed
// (BI_RGB) images are accepted.
func DecodeBMPConfig(data []byte) (BMPInfo, error) {
	if len(data) < fileHeaderLen+infoHeaderLen {
		return BMPInfo{}, fmt.Errorf("%w: %d byte header", ErrMalformed, len(data))
	}
	if data[0] != 'B' || data[1] != 'M' {
		return BMPInfo{}, fmt.Errorf("%w: bad signature %q", ErrMalformed, data[:2])
	}
	offset := int(binary.LittleEndian.Uint32(data[10:14]))
	dib := int(binary.LittleEndian.Uint32(data[14:18]))
	if dib < infoHeaderLen {
		return BMPInfo{}, fmt.Errorf("%w: info header size %d", ErrMalformed, dib)
	}
	w := int(int32(binary.LittleEndian.Uint32(data[18:22])))
	h := int(int32(binary.LittleEndian.Uint32(data[22:26])))
	planes := binary.LittleEndian.Uint16(data[26:28])
	bpp := binary.LittleEndian.Uint16(data[28:30])
	compression := binary.LittleEndian.Uint32(data[30:34])

	if planes != 1 {
		return BMPInfo{}, fmt.Errorf("%w: %d planes", ErrMalformed, planes)
	}
	if bpp != 24 {
		return BMPInfo{}, fmt.Errorf("%w: %d bpp", ErrUnsupportedDepth, bpp)
	}
	if compression != 0 {
		return BMPInfo{}, fmt.Errorf("%w: method %d", ErrUnsupportedCompression, compression)
	}

	info := BMPInfo{Width: w, Height: h}
	if h < 0 {
		info.Height = -h
		info.TopDown = true
	}
	if info.Width <= 0 || info.Height <= 0 || info.Width > maxDimension || info.Height > maxDimension {
		return BMPInfo{}, fmt.Errorf("%w: %dx%d", ErrMalformed, w, h)
	}
	info.stride = (info.Width*3 + 3) &^ 3
	info.offset = offset
	if offset < fileHeaderLen+dib || offset+info.stride*info.Height > len(data) {
		return BMPInfo{}, fmt.Errorf("%w: pixel data %d+%d exceeds %d bytes", ErrMalformed, offset, info.stride*info.Height, len(data))
	}
	return info, nil
}

// BlitBMP streams a 24-bit BMP into dst with its top-left corner at (x, y).
// Rows are converted and written in file order (bottom-up for ordinary
// BMPs) through a single reused row buffer. Nothing is written unless the
// whole payload validates.
func BlitBMP(dst RowWriter, x, y int, data []byte) (image.Rectangle, error) {
	info, err := DecodeBMPConfig(data)
	if err != nil {
		return image.Rectangle{}, err
	}
	row := make([]image565.Color, info.Width)
	for i := 0; i < info.Height; i++ {
		src := data[info.offset+i*info.stride:]
		for px := range row {
			b, g, r := src[px*3], src[px*3+1], src[px*3+2]
			row[px] = image565.RGB(r, g, b)
		}
		line := info.Height - 1 - i
		if info.TopDown {
			line = i
		}
		dst.WriteRow(x, y+line, row)
	}
	return image.Rect(x, y, x+info.Width, y+info.Height), nil
}

// DecodeBMP decodes a 24-bit BMP into a new image.
func DecodeBMP(data []byte) (*image565.Image, error) {
	info, err := DecodeBMPConfig(data)
	if err != nil {
		return nil, err
	}
	img := image565.New(image.Rect(0, 0, info.Width, info.Height))
	if _, err := BlitBMP(img, 0, 0, data); err != nil {
		return nil, err
	}
	return img, nil
}
