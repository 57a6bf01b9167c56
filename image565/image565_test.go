package image565

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    Color
	}{
		{"black", 0, 0, 0, Black},
		{"white", 0xFF, 0xFF, 0xFF, White},
		{"red", 0xFF, 0, 0, Red},
		{"green", 0, 0xFF, 0, Green},
		{"blue", 0, 0, 0xFF, Blue},
		{"low bits dropped", 0x07, 0x03, 0x07, Black},
		{"mixed", 0x84, 0x82, 0x84, 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB(%#x, %#x, %#x) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		name       string
		c          Color
		wr, wg, wb uint32
	}{
		{"black", Black, 0, 0, 0},
		{"white", White, 0xFFFF, 0xFFFF, 0xFFFF},
		{"red", Red, 0xFFFF, 0, 0},
		{"green", Green, 0, 0xFFFF, 0},
		{"blue", Blue, 0, 0, 0xFFFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wr || g != tt.wg || b != tt.wb || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)", r, g, b, a, tt.wr, tt.wg, tt.wb)
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", Color(0x1234), 0x1234},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"rgba red", color.RGBA{0xFF, 0, 0, 0xFF}, Red},
		{"round trip", Color(0x8410), 0x8410},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(Color)
			if got != tt.want {
				t.Errorf("Model.Convert(%v) = %#04x, want %#04x", tt.input, got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"600x450", image.Rect(0, 0, 600, 450), false, 600, 270000},
		{"4x2", image.Rect(0, 0, 4, 2), false, 4, 8},
		{"odd width", image.Rect(0, 0, 5, 3), false, 5, 15},
		{"offset rect", image.Rect(10, 20, 14, 22), false, 4, 8},
		{"empty", image.Rect(0, 0, 0, 0), false, 0, 0},
		{"negative panics", image.Rectangle{Max: image.Point{X: -1, Y: 2}}, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()

			img := New(tt.rect)
			if tt.wantPanic {
				return
			}
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestImageSetGet(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 2))
	img.SetRGB565(1, 0, Red)
	img.Set(3, 1, color.White)

	if got := img.RGB565At(1, 0); got != Red {
		t.Errorf("RGB565At(1, 0) = %#04x, want %#04x", got, Red)
	}
	if got := img.Pix[7]; got != White {
		t.Errorf("Pix[7] = %#04x, want %#04x", got, White)
	}
	c, ok := img.At(1, 0).(Color)
	if !ok || c != Red {
		t.Errorf("At(1, 0) = %v, want Red", img.At(1, 0))
	}
	if img.ColorModel() != Model {
		t.Error("ColorModel() did not return Model")
	}
}

func TestImageOffsetRect(t *testing.T) {
	img := New(image.Rect(100, 50, 104, 52))
	img.SetRGB565(100, 50, Blue)
	img.SetRGB565(103, 51, Green)

	if img.Pix[0] != Blue {
		t.Errorf("Pix[0] = %#04x, want %#04x", img.Pix[0], Blue)
	}
	if img.Pix[7] != Green {
		t.Errorf("Pix[7] = %#04x, want %#04x", img.Pix[7], Green)
	}
	if got := img.PixOffset(101, 51); got != 5 {
		t.Errorf("PixOffset(101, 51) = %d, want 5", got)
	}
}

func TestImageOutOfBounds(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 4))
	img.SetRGB565(-1, 0, White)
	img.SetRGB565(0, -1, White)
	img.SetRGB565(4, 0, White)
	img.SetRGB565(0, 4, White)

	for i, c := range img.Pix {
		if c != Black {
			t.Fatalf("Pix[%d] = %#04x after out-of-bounds writes, want black", i, c)
		}
	}
	if got := img.RGB565At(-1, 0); got != Black {
		t.Errorf("RGB565At(-1, 0) = %#04x, want black", got)
	}
}

func TestImageRow(t *testing.T) {
	img := New(image.Rect(0, 0, 3, 2))
	img.HLine(0, 1, 3, Red)

	row := img.Row(1)
	if len(row) != 3 {
		t.Fatalf("len(Row(1)) = %d, want 3", len(row))
	}
	for x, c := range row {
		if c != Red {
			t.Errorf("Row(1)[%d] = %#04x, want red", x, c)
		}
	}
	if img.Row(2) != nil || img.Row(-1) != nil {
		t.Error("Row out of bounds should be nil")
	}
}

func TestImageCopyFrom(t *testing.T) {
	a := New(image.Rect(0, 0, 4, 4))
	b := New(image.Rect(0, 0, 4, 4))
	a.Fill(Cyan)

	if !b.CopyFrom(a) {
		t.Fatal("CopyFrom returned false for equal bounds")
	}
	for i := range b.Pix {
		if b.Pix[i] != Cyan {
			t.Fatalf("Pix[%d] = %#04x, want cyan", i, b.Pix[i])
		}
	}

	c := New(image.Rect(0, 0, 2, 2))
	if c.CopyFrom(a) {
		t.Error("CopyFrom should refuse mismatched bounds")
	}
}
