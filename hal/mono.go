package hal

// monoBuffer is a 1-bit image in the SSD1306 page layout: each byte holds a
// vertical run of 8 pixels, LSB on top, and pages of width bytes follow each
// other top to bottom.
type monoBuffer struct {
	w, h int
	buf  []byte
}

func newMonoBuffer(w, h int) *monoBuffer {
	pages := (h + 7) / 8
	return &monoBuffer{w: w, h: h, buf: make([]byte, w*pages)}
}

func (b *monoBuffer) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

func (b *monoBuffer) set(x, y int, on bool) {
	if !b.in(x, y) {
		return
	}
	i := (y/8)*b.w + x
	if on {
		b.buf[i] |= 1 << uint(y%8)
	} else {
		b.buf[i] &^= 1 << uint(y%8)
	}
}

func (b *monoBuffer) get(x, y int) bool {
	if !b.in(x, y) {
		return false
	}
	return b.buf[(y/8)*b.w+x]&(1<<uint(y%8)) != 0
}

func (b *monoBuffer) clear() {
	for i := range b.buf {
		b.buf[i] = 0
	}
}

// window is the part of the display a region flush sends: a column range
// and a page range, both inclusive. The controller addresses whole pages, so
// the rows are widened to page boundaries.
type window struct {
	x0, x1 int
	p0, p1 int
}

// regionWindow clips the box to a w x h display. ok is false when nothing
// is left to send.
func regionWindow(x, y, rw, rh, w, h int) (win window, ok bool) {
	if rw <= 0 || rh <= 0 {
		return window{}, false
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+rw, w)-1, min(y+rh, h)-1
	if x1 < x0 || y1 < y0 {
		return window{}, false
	}
	return window{x0: x0, x1: x1, p0: y0 / 8, p1: y1 / 8}, true
}

// copyWindow copies the bytes of win from src to dst.
func copyWindow(dst, src *monoBuffer, win window) {
	for p := win.p0; p <= win.p1; p++ {
		off := p * src.w
		copy(dst.buf[off+win.x0:off+win.x1+1], src.buf[off+win.x0:off+win.x1+1])
	}
}
