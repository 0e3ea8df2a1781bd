package ui

import "errors"

// Maximum widgets per panel. Layouts are static, so the bounds are known.
const (
	MaxButtons = 8
	MaxKnobs   = 8
)

// ErrPanelFull is returned when a layout adds more widgets than a panel holds.
var ErrPanelFull = errors.New("ui: panel full")

// Panel is one screen: a fixed set of buttons and knobs it owns exclusively.
//
// A Panel keeps no dirty flag of its own; it is dirty when any child is.
type Panel struct {
	buttons [MaxButtons]Button
	knobs   [MaxKnobs]Knob
	nb      int
	nk      int
}

// NewPanel returns an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// AddButton appends b to the panel.
func (p *Panel) AddButton(b Button) error {
	if p.nb >= len(p.buttons) {
		return ErrPanelFull
	}
	p.buttons[p.nb] = b
	p.nb++
	return nil
}

// AddKnob appends k to the panel.
func (p *Panel) AddKnob(k Knob) error {
	if p.nk >= len(p.knobs) {
		return ErrPanelFull
	}
	p.knobs[p.nk] = k
	p.nk++
	return nil
}

func (p *Panel) Buttons() []Button { return p.buttons[:p.nb] }
func (p *Panel) Knobs() []Knob     { return p.knobs[:p.nk] }

// Button returns the i-th button.
func (p *Panel) Button(i int) *Button { return &p.buttons[i] }

// Knob returns the i-th knob.
func (p *Panel) Knob(i int) *Knob { return &p.knobs[i] }

// IsDirty reports whether any child needs repainting.
func (p *Panel) IsDirty() bool {
	for i := 0; i < p.nb; i++ {
		if p.buttons[i].IsDirty() {
			return true
		}
	}
	for i := 0; i < p.nk; i++ {
		if p.knobs[i].IsDirty() {
			return true
		}
	}
	return false
}

// Render paints every dirty child, buttons first, and returns the union of
// their boxes. With nothing dirty the result has zero size.
func (p *Panel) Render(s Surface) Rect {
	r := EmptyRect()
	for i := 0; i < p.nb; i++ {
		if b := &p.buttons[i]; b.IsDirty() {
			r = r.Cover(b.Render(s))
		}
	}
	for i := 0; i < p.nk; i++ {
		if k := &p.knobs[i]; k.IsDirty() {
			r = r.Cover(k.Render(s))
		}
	}
	return r
}

// Bounds returns the union of every child's box.
func (p *Panel) Bounds() Rect {
	r := EmptyRect()
	for i := 0; i < p.nb; i++ {
		r = r.Cover(p.buttons[i].Bounds())
	}
	for i := 0; i < p.nk; i++ {
		r = r.Cover(p.knobs[i].Bounds())
	}
	return r
}

// InputReset marks every child dirty.
func (p *Panel) InputReset() {
	for i := 0; i < p.nb; i++ {
		p.buttons[i].InputReset()
	}
	for i := 0; i < p.nk; i++ {
		p.knobs[i].InputReset()
	}
}

// InputUpdate offers the event to every child; each filters by its own id.
func (p *Panel) InputUpdate(id InputID, v Value, out *Commands) {
	for i := 0; i < p.nb; i++ {
		p.buttons[i].InputUpdate(id, v, out)
	}
	for i := 0; i < p.nk; i++ {
		p.knobs[i].InputUpdate(id, v, out)
	}
}
