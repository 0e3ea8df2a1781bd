package ui

// Button is a captioned control bound to one digital input.
//
// It is idle or highlighted; what a level change means is delegated to its
// Behavior, whose verdict alone decides whether a redraw is needed.
type Button struct {
	pos       Point
	caption   string
	id        InputID
	behavior  Behavior
	pressed   bool
	highlight bool
	dirty     bool
}

// NewButton returns a button that is dirty until its first render.
func NewButton(pos Point, caption string, id InputID, b Behavior) Button {
	return Button{
		pos:      pos,
		caption:  caption,
		id:       id,
		behavior: b,
		dirty:    true,
	}
}

// WithHighlight returns b with its initial highlight set.
func (b Button) WithHighlight(on bool) Button {
	b.highlight = on
	return b
}

func (b *Button) Caption() string    { return b.caption }
func (b *Button) Input() InputID     { return b.id }
func (b *Button) Behavior() Behavior { return b.behavior }
func (b *Button) Highlighted() bool  { return b.highlight }
func (b *Button) IsDirty() bool      { return b.dirty }
func (b *Button) InputReset()        { b.dirty = true }

// Bounds returns the box the button paints.
func (b *Button) Bounds() Rect {
	return Rect{X: b.pos.X, Y: b.pos.Y, W: TextWidth(b.caption), H: LineHeight()}
}

// Render paints the caption, inverted when highlighted.
func (b *Button) Render(s Surface) Rect {
	r := b.Bounds()
	bg, fg := Off, On
	if b.highlight {
		bg, fg = On, Off
	}
	fillRect(s, r, bg)
	drawText(s, r, b.pos.X, b.pos.Y, b.caption, fg)
	b.dirty = false
	return r
}

// InputUpdate runs the behavior when the button's level changes.
func (b *Button) InputUpdate(id InputID, v Value, out *Commands) {
	if id != b.id {
		return
	}
	level, ok := v.Bool()
	if !ok || level == b.pressed {
		return
	}
	b.pressed = level

	hl, redraw := b.behavior.apply(level, b.highlight, out)
	b.highlight = hl
	if redraw {
		b.dirty = true
	}
}
