package glyph

import (
	"errors"
	"image"
	"testing"

	"periph.io/x/devices/v3/rm690b0/image565"
)

func TestNewValidatesTableSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		size    int
		wantErr bool
	}{
		{"8x8", 8, 8, 95 * 8, false},
		{"12x16 rounds row up", 12, 16, 95 * 16 * 2, false},
		{"24x32", 24, 32, 95 * 32 * 3, false},
		{"short table", 8, 8, 95*8 - 1, true},
		{"long table", 16, 16, 95*32 + 1, true},
		{"zero width", 0, 8, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.name, tt.w, tt.h, make([]byte, tt.size))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.w > 0 && !errors.Is(err, ErrTableSize) {
					t.Errorf("err = %v, want ErrTableSize", err)
				}
				return
			}
			if f.RowBytes() != (tt.w+7)/8 {
				t.Errorf("RowBytes() = %d, want %d", f.RowBytes(), (tt.w+7)/8)
			}
		})
	}
}

// indexFont returns a font whose glyph i has every byte set to i, so a
// lookup can be checked by content.
func indexFont(t *testing.T) *Font {
	t.Helper()
	data := make([]byte, NumGlyphs*4)
	for i := 0; i < NumGlyphs; i++ {
		for j := 0; j < 4; j++ {
			data[i*4+j] = byte(i)
		}
	}
	f, err := New("index", 8, 4, data)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestGlyphLookup(t *testing.T) {
	f := indexFont(t)
	question := byte('?' - FirstCodepoint)

	for r := rune(FirstCodepoint); r <= LastCodepoint; r++ {
		if got := f.Glyph(r)[0]; got != byte(r-FirstCodepoint) {
			t.Fatalf("Glyph(%q) row = %d, want %d", r, got, r-FirstCodepoint)
		}
	}

	for _, r := range []rune{0, 0x1F, 0x7F, 0xA0, 'é', '€', 0x1F600, -1} {
		if got := f.Glyph(r)[0]; got != question {
			t.Errorf("Glyph(%U) = glyph %d, want fallback %d", r, got, question)
		}
		if f.Index(r) != int(question) {
			t.Errorf("Index(%U) = %d, want %d", r, f.Index(r), question)
		}
	}
}

func TestGlyphIsReadOnlyView(t *testing.T) {
	f := indexFont(t)
	g := f.Glyph('A')
	if cap(g) != len(g) {
		t.Error("Glyph should return a capacity-limited slice")
	}
}

func TestBitOrder(t *testing.T) {
	data := make([]byte, NumGlyphs*2*2)
	// Glyph ' ' is 12x2: row 0 = 0x80 0x10, row 1 = 0x01 0x00.
	copy(data, []byte{0x80, 0x10, 0x01, 0x00})
	f, err := New("bits", 12, 2, data)
	if err != nil {
		t.Fatal(err)
	}
	g := f.Glyph(' ')
	want := map[image.Point]bool{{0, 0}: true, {11, 0}: true, {7, 1}: true}
	for y := 0; y < 2; y++ {
		for x := 0; x < 12; x++ {
			if f.Bit(g, x, y) != want[image.Point{x, y}] {
				t.Errorf("Bit(%d, %d) = %v", x, y, !want[image.Point{x, y}])
			}
		}
	}
}

func TestLookupClampsInvalidID(t *testing.T) {
	tests := []struct {
		id   ID
		w, h int
	}{
		{Font8x8, 8, 8},
		{Font16x16, 16, 16},
		{Font16x24, 16, 24},
		{Font24x24, 24, 24},
		{Font24x32, 24, 32},
		{Font32x32, 32, 32},
		{Font32x48, 32, 48},
		{-1, 8, 8},
		{7, 8, 8},
		{1000, 8, 8},
	}

	for _, tt := range tests {
		f := Lookup(tt.id)
		if f.W != tt.w || f.H != tt.h {
			t.Errorf("Lookup(%d) = %v, want %dx%d", tt.id, f, tt.w, tt.h)
		}
	}
	if Clamp(9) != Font8x8 || Clamp(-3) != Font8x8 || Clamp(3) != Font24x24 {
		t.Error("Clamp did not map ids as expected")
	}
	if Lookup(Font16x16) != Lookup(Font16x16) {
		t.Error("built-in tables should be built once")
	}
}

func TestBuiltinGlyphShapes(t *testing.T) {
	f := Lookup(Font16x16)

	blank := f.Glyph(' ')
	for _, b := range blank {
		if b != 0 {
			t.Fatal("space glyph should be blank")
		}
	}

	for _, r := range "AHi?#" {
		g := f.Glyph(r)
		set := 0
		for y := 0; y < f.H; y++ {
			for x := 0; x < f.W; x++ {
				if f.Bit(g, x, y) {
					set++
				}
			}
		}
		if set == 0 {
			t.Errorf("glyph %q is blank", r)
		}
	}

	// 'H' has a vertical stroke in each half of the cell.
	h := f.Glyph('H')
	left, right := 0, 0
	for y := 0; y < f.H; y++ {
		l, r := false, false
		for x := 0; x < f.W; x++ {
			if f.Bit(h, x, y) {
				if x < f.W/2 {
					l = true
				} else {
					r = true
				}
			}
		}
		if l {
			left++
		}
		if r {
			right++
		}
	}
	if left < f.H/3 || right < f.H/3 {
		t.Errorf("'H' strokes cover %d/%d rows, want at least %d each", left, right, f.H/3)
	}

	if string(f.Glyph('H')) == string(f.Glyph('i')) {
		t.Error("'H' and 'i' should differ")
	}
}

type recorder struct {
	*image565.Image
	writes int
}

func (r *recorder) SetRGB565(x, y int, c image565.Color) {
	r.writes++
	r.Image.SetRGB565(x, y, c)
}

func TestDrawHiTransparent(t *testing.T) {
	f := Lookup(Clamp(1))
	img := image565.New(image.Rect(0, 0, 64, 48))

	end := Draw(img, f, 10, 10, "Hi", Style{FG: image565.White, Transparent: true})
	if end != 10+2*f.W {
		t.Errorf("end x = %d, want %d", end, 10+2*f.W)
	}

	want := image565.New(img.Rect)
	for i, r := range "Hi" {
		g := f.Glyph(r)
		for y := 0; y < f.H; y++ {
			for x := 0; x < f.W; x++ {
				if f.Bit(g, x, y) {
					want.SetRGB565(10+i*f.W+x, 10+y, image565.White)
				}
			}
		}
	}
	for i := range want.Pix {
		if img.Pix[i] != want.Pix[i] {
			x, y := i%img.Stride, i/img.Stride
			t.Fatalf("pixel (%d, %d) = %#04x, want %#04x", x, y, img.Pix[i], want.Pix[i])
		}
	}
}

func TestDrawTransparentKeepsBackground(t *testing.T) {
	f := Lookup(Font8x8)
	img := image565.New(image.Rect(0, 0, 16, 16))
	img.Fill(image565.Blue)

	Draw(img, f, 0, 0, "-", Style{FG: image565.Red, Transparent: true})
	for _, c := range img.Pix {
		if c != image565.Blue && c != image565.Red {
			t.Fatalf("unexpected color %#04x", c)
		}
	}
	if img.RGB565At(15, 15) != image565.Blue {
		t.Error("pixel outside the glyph changed")
	}
}

func TestDrawOpaqueBackground(t *testing.T) {
	f := Lookup(Font8x8)
	img := image565.New(image.Rect(0, 0, 32, 8))
	img.Fill(image565.Blue)

	Draw(img, f, 0, 0, "  ", Style{FG: image565.White, BG: image565.Black})
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			if img.RGB565At(x, y) != image565.Black {
				t.Fatalf("(%d, %d) not painted with background", x, y)
			}
		}
	}
	if img.RGB565At(16, 0) != image565.Blue {
		t.Error("pixel after the text changed")
	}
}

func TestDrawClipsAndFallsBack(t *testing.T) {
	f := Lookup(Font8x8)
	rec := &recorder{Image: image565.New(image.Rect(0, 0, 10, 10))}

	end := Draw(rec, f, 6, 6, "é", Style{FG: image565.White})
	if end != 14 {
		t.Errorf("end x = %d, want 14 (one fallback glyph)", end)
	}
	if rec.writes != f.W*f.H {
		t.Errorf("%d writes, want %d", rec.writes, f.W*f.H)
	}

	ref := image565.New(image.Rect(0, 0, 10, 10))
	Draw(ref, f, 6, 6, "?", Style{FG: image565.White})
	for i := range ref.Pix {
		if ref.Pix[i] != rec.Pix[i] {
			t.Fatal("non-ASCII rune should render as '?'")
		}
	}
}

func TestMeasure(t *testing.T) {
	f := Lookup(Font16x24)
	w, h := Measure(f, "héllo")
	if w != 5*16 || h != 24 {
		t.Errorf("Measure = %dx%d, want %dx%d", w, h, 5*16, 24)
	}
}
