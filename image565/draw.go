package image565

import (
	"image"
	"math"
)

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	h := p.Rect.Dy()
	w := p.Rect.Dx()
	if w <= 0 || h <= 0 {
		return
	}
	first := p.Pix[:w]
	for i := range first {
		first[i] = c
	}
	for y := 1; y < h; y++ {
		copy(p.Pix[y*p.Stride:y*p.Stride+w], first)
	}
}

// clip intersects the rectangle (x, y, w, h) with the image bounds.
func (p *Image) clip(x, y, w, h int) image.Rectangle {
	x0, x1 := clipRun(x, w, p.Rect.Min.X, p.Rect.Max.X)
	y0, y1 := clipRun(y, h, p.Rect.Min.Y, p.Rect.Max.Y)
	if x0 >= x1 || y0 >= y1 {
		return image.Rectangle{}
	}
	return image.Rect(x0, y0, x1, y1)
}

// clipRun clips the run [v, v+n) to [lo, hi) without computing v+n when it
// could overflow.
func clipRun(v, n, lo, hi int) (int, int) {
	if n <= 0 || v >= hi {
		return 0, 0
	}
	end := v + n
	if v > 0 {
		end = v + min(n, hi-v)
	}
	return max(v, lo), min(end, hi)
}

// misses reports whether the square of half size r around (cx, cy) lies
// entirely outside the image.
func (p *Image) misses(cx, cy, r int) bool {
	b := p.Rect
	return cx < b.Min.X && b.Min.X-cx > r ||
		cx >= b.Max.X && cx-(b.Max.X-1) > r ||
		cy < b.Min.Y && b.Min.Y-cy > r ||
		cy >= b.Max.Y && cy-(b.Max.Y-1) > r
}

// large reports whether r is too big for the midpoint walk to be worth it.
// Such circles are drawn row by row over the visible rows only.
func (p *Image) large(r int) bool {
	return r > p.Rect.Dx()+p.Rect.Dy()
}

// halfWidth returns the half width of a circle of radius r at distance dy
// from its center, or -1 when the row is outside the circle. The result is
// capped so that 2*hw+1 cannot overflow.
func halfWidth(r, dy int) int {
	if dy < 0 {
		dy = -dy
	}
	if dy > r {
		return -1
	}
	fr, fd := float64(r), float64(dy)
	return int(math.Min(math.Sqrt((fr-fd)*(fr+fd)), math.MaxInt/4))
}

// span writes c to row y between x0 (inclusive) and x1 (exclusive). The
// range must already be clipped.
func (p *Image) span(x0, x1, y int, c Color) {
	i := p.PixOffset(x0, y)
	row := p.Pix[i : i+x1-x0]
	for j := range row {
		row[j] = c
	}
}

// HLine draws a horizontal run of w pixels starting at (x, y).
func (p *Image) HLine(x, y, w int, c Color) {
	r := p.clip(x, y, w, 1)
	if r.Empty() {
		return
	}
	p.span(r.Min.X, r.Max.X, r.Min.Y, c)
}

// VLine draws a vertical run of h pixels starting at (x, y).
func (p *Image) VLine(x, y, h int, c Color) {
	r := p.clip(x, y, 1, h)
	if r.Empty() {
		return
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	for n := r.Dy(); n > 0; n-- {
		p.Pix[i] = c
		i += p.Stride
	}
}

// FillRect fills the rectangle with its top-left corner at (x, y). The
// rectangle is clipped once; each covered row is written exactly once.
func (p *Image) FillRect(x, y, w, h int, c Color) {
	r := p.clip(x, y, w, h)
	if r.Empty() {
		return
	}
	for row := r.Min.Y; row < r.Max.Y; row++ {
		p.span(r.Min.X, r.Max.X, row, c)
	}
}

// Outline draws the outline of a rectangle. Corners are written once.
func (p *Image) Outline(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	p.HLine(x, y, w, c)
	if h > 1 {
		p.HLine(x, y+h-1, w, c)
	}
	if h > 2 {
		p.VLine(x, y+1, h-2, c)
		if w > 1 {
			p.VLine(x+w-1, y+1, h-2, c)
		}
	}
}

// Line draws a line from (x0, y0) to (x1, y1) inclusive using Bresenham's
// algorithm.
func (p *Image) Line(x0, y0, x1, y1 int, c Color) {
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		p.HLine(x0, y0, x1-x0+1, c)
		return
	}
	if x0 == x1 {
		if y0 > y1 {
			y0, y1 = y1, y0
		}
		p.VLine(x0, y0, y1-y0+1, c)
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		p.SetRGB565(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Circle draws the outline of a circle with the midpoint algorithm.
func (p *Image) Circle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	if p.misses(cx, cy, r) {
		return
	}
	if r == 0 {
		p.SetRGB565(cx, cy, c)
		return
	}
	if p.large(r) {
		p.bigCircle(cx, cy, r, c)
		return
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		p.SetRGB565(cx+x, cy+y, c)
		p.SetRGB565(cx-x, cy+y, c)
		p.SetRGB565(cx+x, cy-y, c)
		p.SetRGB565(cx-x, cy-y, c)
		p.SetRGB565(cx+y, cy+x, c)
		p.SetRGB565(cx-y, cy+x, c)
		p.SetRGB565(cx+y, cy-x, c)
		p.SetRGB565(cx-y, cy-x, c)
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle draws a filled circle. The midpoint walk emits one horizontal
// span per scanline instead of individual pixels.
func (p *Image) FillCircle(cx, cy, r int, c Color) {
	if r < 0 || p.misses(cx, cy, r) {
		return
	}
	if p.large(r) {
		for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
			if hw := halfWidth(r, y-cy); hw >= 0 {
				p.HLine(cx-hw, y, 2*hw+1, c)
			}
		}
		return
	}
	// half[dy] is the half width of the span at cy±dy.
	half := make([]int, r+1)
	for i := range half {
		half[i] = -1
	}
	x, y := r, 0
	d := 1 - r
	for x >= y {
		if x > half[y] {
			half[y] = x
		}
		if y > half[x] {
			half[x] = y
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
	for dy, hw := range half {
		if hw < 0 {
			continue
		}
		p.HLine(cx-hw, cy+dy, 2*hw+1, c)
		if dy != 0 {
			p.HLine(cx-hw, cy-dy, 2*hw+1, c)
		}
	}
}

// bigCircle draws the outline of a circle whose radius exceeds the image,
// one or two runs per visible row.
func (p *Image) bigCircle(cx, cy, r int, c Color) {
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		dy := y - cy
		hw := halfWidth(r, dy)
		if hw < 0 {
			continue
		}
		// The outline on this row runs from just outside the next row
		// away from the center out to hw.
		next := dy + 1
		if dy < 0 {
			next = dy - 1
		}
		in := min(halfWidth(r, next)+1, hw)
		n := hw - in + 1
		p.HLine(cx+in, y, n, c)
		p.HLine(cx-hw, y, n, c)
	}
}

// WriteRow copies row into the image starting at (x, y), clipping on both
// sides.
func (p *Image) WriteRow(x, y int, row []Color) {
	r := p.clip(x, y, len(row), 1)
	if r.Empty() {
		return
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	copy(p.Pix[i:i+r.Dx()], row[r.Min.X-x:r.Max.X-x])
}

// Blit copies a w×h block of row-major pixels to (x, y), clipped.
func (p *Image) Blit(x, y, w, h int, pix []Color) {
	if w <= 0 || h <= 0 || len(pix)/w < h {
		return
	}
	for j := 0; j < h; j++ {
		p.WriteRow(x, y+j, pix[j*w:(j+1)*w])
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
