//go:build !tinygo

package hal

import (
	"errors"
	"image/color"
	"sync"
)

var errFlushInjected = errors.New("display: injected flush failure")

// hostFramebuffer keeps the drawn image (back) apart from what the panel
// shows (front); only flushes move pixels from one to the other.
type hostFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	back   *monoBuffer
	front  *monoBuffer

	flushes int
	bytes   int
	last    window
	// failNext makes the next n flushes fail.
	failNext int
}

// FlushStats describes the flushes seen so far.
type FlushStats struct {
	Flushes int
	// Bytes is the display RAM traffic of all flushes.
	Bytes int
	// Last is the most recent flushed box, in pixels.
	LastX, LastY, LastW, LastH int
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	return &hostFramebuffer{
		width:  width,
		height: height,
		back:   newMonoBuffer(width, height),
		front:  newMonoBuffer(width, height),
	}
}

func (f *hostFramebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }

func (f *hostFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.back.set(int(x), int(y), c.R|c.G|c.B != 0)
}

func (f *hostFramebuffer) Display() error {
	return f.FlushRegion(0, 0, f.width, f.height)
}

func (f *hostFramebuffer) Clear() error {
	f.mu.Lock()
	f.back.clear()
	f.mu.Unlock()
	return f.Display()
}

func (f *hostFramebuffer) FlushRegion(x, y, w, h int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	win, ok := regionWindow(x, y, w, h, f.width, f.height)
	if !ok {
		return nil
	}
	if f.failNext > 0 {
		f.failNext--
		return errFlushInjected
	}
	copyWindow(f.front, f.back, win)
	f.flushes++
	f.bytes += (win.x1 - win.x0 + 1) * (win.p1 - win.p0 + 1)
	f.last = win
	return nil
}

// stats returns the flush counters.
func (f *hostFramebuffer) stats() FlushStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := FlushStats{Flushes: f.flushes, Bytes: f.bytes}
	if f.flushes > 0 {
		s.LastX, s.LastW = f.last.x0, f.last.x1-f.last.x0+1
		s.LastY, s.LastH = f.last.p0*8, (f.last.p1-f.last.p0+1)*8
	}
	return s
}

// snapshot copies the front buffer into dst, one bool per pixel, row major.
func (f *hostFramebuffer) snapshot(dst []bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if i := y*f.width + x; i < len(dst) {
				dst[i] = f.front.get(x, y)
			}
		}
	}
}
