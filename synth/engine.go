package synth

// Engine is the narrow interface of the synthesis engine.
//
// Calls are fire-and-forget: implementations must not block the caller.
type Engine interface {
	SetParameter(p Param, v float32)
	SetGate(on bool)
}

// Nop discards everything.
type Nop struct{}

func (Nop) SetParameter(Param, float32) {}
func (Nop) SetGate(bool)                {}

// Fanout forwards every call to each engine in order.
type Fanout []Engine

func (f Fanout) SetParameter(p Param, v float32) {
	for _, e := range f {
		e.SetParameter(p, v)
	}
}

func (f Fanout) SetGate(on bool) {
	for _, e := range f {
		e.SetGate(on)
	}
}
