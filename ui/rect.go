package ui

import "math"

// Point is a screen position in pixels.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box given by its origin and size.
type Rect struct {
	X, Y int
	W, H int
}

// EmptyRect is the starting value for a union: origin at the far corner and
// zero size, so covering nothing yields a zero-size result.
func EmptyRect() Rect {
	return Rect{X: math.MaxInt, Y: math.MaxInt}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cover returns the smallest rectangle containing both r and o.
// An empty operand is the identity.
func (r Rect) Cover(o Rect) Rect {
	if o.Empty() {
		return r
	}
	if r.Empty() {
		return o
	}
	x1 := max(r.X+r.W, o.X+o.W)
	y1 := max(r.Y+r.H, o.Y+o.H)
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Clip returns r limited to the box (0, 0, w, h).
func (r Rect) Clip(w, h int) Rect {
	if r.Empty() {
		return Rect{}
	}
	x0 := max(r.X, 0)
	y0 := max(r.Y, 0)
	x1 := min(r.X+r.W, w)
	y1 := min(r.Y+r.H, h)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	if o.Empty() {
		return true
	}
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}
