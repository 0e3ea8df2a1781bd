package ui

import "tinygo.org/x/drivers"

// Surface is the pixel target widgets paint into. It has the shape of a
// tinygo display driver so tinyfont can draw on it directly.
type Surface = drivers.Displayer

// Drawable is anything that tracks whether it needs repainting.
type Drawable interface {
	// IsDirty reports whether visual state changed since the last Render.
	IsDirty() bool
	// Render paints the current state, clears the dirty flag and returns the
	// box it painted. The box covers the whole glyph background, so painting
	// it overwrites whatever was shown before.
	Render(s Surface) Rect
}

// InputConsumer accepts input events.
type InputConsumer interface {
	// InputReset marks the element dirty unconditionally.
	InputReset()
	// InputUpdate applies v if id is the element's input. Side effects are
	// requested by pushing commands to out.
	InputUpdate(id InputID, v Value, out *Commands)
}

// Widget is a leaf control.
type Widget interface {
	Drawable
	InputConsumer
}
