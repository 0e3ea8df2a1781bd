package ui

// InputID identifies one physical control (button or encoder).
//
// IDs are assigned once when the hardware inputs are enumerated and are never
// reused for a different control within a build.
type InputID uint8

type valueKind uint8

const (
	kindNone valueKind = iota
	kindBool
	kindInt
)

// Value is the payload of an input event: either a digital level
// (true = pressed) or an absolute encoder count.
//
// Encoder counts are raw hardware counters, not deltas, and wrap per the
// hardware's modulus.
type Value struct {
	kind valueKind
	b    bool
	i    int32
}

// Bool returns a level value.
func Bool(level bool) Value { return Value{kind: kindBool, b: level} }

// Int returns an encoder count value.
func Int(count int32) Value { return Value{kind: kindInt, i: count} }

// Bool returns the level and whether v carries one.
func (v Value) Bool() (level, ok bool) {
	return v.b, v.kind == kindBool
}

// Int returns the count and whether v carries one.
func (v Value) Int() (count int32, ok bool) {
	return v.i, v.kind == kindInt
}

func (v Value) String() string {
	switch v.kind {
	case kindBool:
		if v.b {
			return "Bool(true)"
		}
		return "Bool(false)"
	case kindInt:
		return "Int(" + itoa(int(v.i)) + ")"
	default:
		return "None"
	}
}
