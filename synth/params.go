package synth

// Params holds the current value of every parameter.
//
// Values live here rather than in widgets so they survive panel switches.
// Params is owned by the poll loop and is not safe for concurrent use.
type Params struct {
	v [ParamCount]float32
}

// NewParams returns a store initialised to the parameter defaults.
func NewParams() *Params {
	p := &Params{}
	p.Reset()
	return p
}

// Reset restores every parameter to its default.
func (ps *Params) Reset() {
	for i := range ps.v {
		ps.v[i] = specs[i].Default
	}
}

// Get returns the current value of p, or 0 for an unknown parameter.
func (ps *Params) Get(p Param) float32 {
	if !p.Valid() {
		return 0
	}
	return ps.v[p]
}

// Set stores the clamped value and reports whether it changed.
func (ps *Params) Set(p Param, v float32) (float32, bool) {
	if !p.Valid() {
		return 0, false
	}
	v = specs[p].Clamp(v)
	if ps.v[p] == v {
		return v, false
	}
	ps.v[p] = v
	return v, true
}

// Toggle flips p between its minimum and maximum and returns the new value.
// Any value above the minimum counts as "on".
func (ps *Params) Toggle(p Param) float32 {
	if !p.Valid() {
		return 0
	}
	s := specs[p]
	if ps.v[p] > s.Min {
		ps.v[p] = s.Min
	} else {
		ps.v[p] = s.Max
	}
	return ps.v[p]
}

// On reports whether p is above its minimum.
func (ps *Params) On(p Param) bool {
	return p.Valid() && ps.v[p] > specs[p].Min
}
