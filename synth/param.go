package synth

import "math"

// Param identifies one synthesis-engine parameter.
type Param uint8

const (
	ExcBowLevel Param = iota
	ExcBowTimbre
	ExcBlowLevel
	ExcBlowMeta
	ExcBlowTimbre
	ExcStrikeLevel
	ExcStrikeMeta
	ExcStrikeTimbre
	ExcEnvShape
	ResGeometry
	ResBrightness
	ResDamping
	ResPosition
	ResModulation
	OutSpace
	OutLevel
	SysMono

	ParamCount
)

// Spec describes the legal range and encoder resolution of a parameter.
type Spec struct {
	Name    string
	Min     float32
	Max     float32
	Default float32
	// Step is the value change per encoder tick.
	Step float32
	// CC is the MIDI control change number the parameter is mirrored to.
	CC uint8
}

var specs = [ParamCount]Spec{
	ExcBowLevel:     {Name: "bow.level", Min: 0, Max: 1, Default: 0, Step: 0.01, CC: 14},
	ExcBowTimbre:    {Name: "bow.timbre", Min: 0, Max: 1, Default: 0.5, Step: 0.01, CC: 15},
	ExcBlowLevel:    {Name: "blow.level", Min: 0, Max: 1, Default: 0, Step: 0.01, CC: 16},
	ExcBlowMeta:     {Name: "blow.flow", Min: 0, Max: 1, Default: 0.5, Step: 0.01, CC: 17},
	ExcBlowTimbre:   {Name: "blow.timbre", Min: 0, Max: 1, Default: 0.5, Step: 0.01, CC: 18},
	ExcStrikeLevel:  {Name: "strike.level", Min: 0, Max: 1, Default: 0.8, Step: 0.01, CC: 19},
	ExcStrikeMeta:   {Name: "strike.mallet", Min: 0, Max: 1, Default: 0.5, Step: 0.01, CC: 20},
	ExcStrikeTimbre: {Name: "strike.timbre", Min: 0, Max: 1, Default: 0.5, Step: 0.01, CC: 21},
	ExcEnvShape:     {Name: "env.contour", Min: 0, Max: 1, Default: 0.5, Step: 0.01, CC: 22},
	ResGeometry:     {Name: "res.geometry", Min: 0, Max: 1, Default: 0.4, Step: 0.01, CC: 23},
	ResBrightness:   {Name: "res.brightness", Min: 0, Max: 1, Default: 0.6, Step: 0.01, CC: 24},
	ResDamping:      {Name: "res.damping", Min: 0, Max: 1, Default: 0.6, Step: 0.01, CC: 25},
	ResPosition:     {Name: "res.position", Min: 0, Max: 1, Default: 0.3, Step: 0.01, CC: 26},
	ResModulation:   {Name: "res.modulation", Min: -1, Max: 1, Default: 0, Step: 0.02, CC: 27},
	OutSpace:        {Name: "out.space", Min: 0, Max: 1, Default: 0.3, Step: 0.01, CC: 28},
	OutLevel:        {Name: "out.level", Min: 0, Max: 1, Default: 0.8, Step: 0.01, CC: 7},
	SysMono:         {Name: "sys.mono", Min: 0, Max: 1, Default: 0, Step: 1, CC: 29},
}

// Valid reports whether p names a known parameter.
func (p Param) Valid() bool { return p < ParamCount }

// Spec returns the parameter description. Unknown parameters return a zero Spec.
func (p Param) Spec() Spec {
	if !p.Valid() {
		return Spec{}
	}
	return specs[p]
}

func (p Param) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return specs[p].Name
}

// Clamp limits v to [Min, Max].
func (s Spec) Clamp(v float32) float32 {
	if v != v { // NaN
		return s.Min
	}
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	return v
}

// Percent maps v onto 0..100 of the parameter range, rounded to nearest.
func (s Spec) Percent(v float32) int {
	return int(math.Round(float64(s.norm(v)) * 100))
}

// MIDIValue maps v onto the 7-bit controller range.
func (s Spec) MIDIValue(v float32) uint8 {
	return uint8(math.Round(float64(s.norm(v)) * 127))
}

func (s Spec) norm(v float32) float32 {
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return (s.Clamp(v) - s.Min) / span
}
