package ui

import "surface/synth"

// DefaultModulus is the wrap of a 16-bit hardware encoder counter.
const DefaultModulus = 1 << 16

// EncoderDelta returns the signed distance from prev to cur on a counter that
// wraps at modulus. Jumps of half the modulus or more are taken to be wraps
// in the other direction, so the result lies in [-modulus/2, modulus/2).
// A modulus <= 0 means the counter does not wrap.
func EncoderDelta(prev, cur, modulus int32) int32 {
	d := int64(cur) - int64(prev)
	if modulus <= 0 {
		return int32(d)
	}
	m := int64(modulus)
	d %= m
	if d < 0 {
		d += m
	}
	if d >= m-m/2 {
		d -= m
	}
	return int32(d)
}

// Knob binds one encoder to one synthesis parameter.
//
// The first count it sees only sets the baseline. Later counts move the
// parameter by delta*Step, clamped to its range; the knob asks for a redraw
// only when its percent label changes.
type Knob struct {
	pos     Point
	caption string
	id      InputID
	param   synth.Param
	modulus int32

	value  float32
	label  int
	raw    int32
	primed bool
	dirty  bool
}

// NewKnob returns a knob showing value, dirty until its first render.
func NewKnob(pos Point, caption string, id InputID, p synth.Param, value float32) Knob {
	s := p.Spec()
	value = s.Clamp(value)
	return Knob{
		pos:     pos,
		caption: caption,
		id:      id,
		param:   p,
		modulus: DefaultModulus,
		value:   value,
		label:   s.Percent(value),
		dirty:   true,
	}
}

// WithModulus returns k reading an encoder that wraps at m.
func (k Knob) WithModulus(m int32) Knob {
	k.modulus = m
	return k
}

func (k *Knob) Caption() string    { return k.caption }
func (k *Knob) Input() InputID     { return k.id }
func (k *Knob) Param() synth.Param { return k.param }
func (k *Knob) Value() float32     { return k.value }
func (k *Knob) Label() string      { return itoa(k.label) }
func (k *Knob) IsDirty() bool      { return k.dirty }
func (k *Knob) InputReset()        { k.dirty = true }

// Bounds returns the box the knob paints: caption above value.
// The width fits the widest possible label so a shorter one erases a longer.
func (k *Knob) Bounds() Rect {
	w := max(TextWidth(k.caption), TextWidth("100"))
	return Rect{X: k.pos.X, Y: k.pos.Y, W: w, H: 2 * LineHeight()}
}

// Render paints the caption and the current value label.
func (k *Knob) Render(s Surface) Rect {
	r := k.Bounds()
	fillRect(s, r, Off)
	drawText(s, r, k.pos.X, k.pos.Y, k.caption, On)
	drawText(s, r, k.pos.X, k.pos.Y+LineHeight(), k.Label(), On)
	k.dirty = false
	return r
}

// InputUpdate applies an encoder count.
func (k *Knob) InputUpdate(id InputID, v Value, out *Commands) {
	if id != k.id {
		return
	}
	raw, ok := v.Int()
	if !ok {
		return
	}
	if !k.primed {
		k.raw = raw
		k.primed = true
		return
	}

	d := EncoderDelta(k.raw, raw, k.modulus)
	k.raw = raw
	if d == 0 {
		return
	}

	s := k.param.Spec()
	next := s.Clamp(k.value + float32(d)*s.Step)
	if next == k.value {
		return
	}
	k.value = next
	out.Push(SetParam(k.param, next))

	if l := s.Percent(next); l != k.label {
		k.label = l
		k.dirty = true
	}
}
