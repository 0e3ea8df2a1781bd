package ui

import "surface/synth"

// BehaviorKind is the closed set of things a Button can do when pressed.
type BehaviorKind uint8

const (
	// BehaviorNotify does nothing visible; the button never needs a redraw.
	BehaviorNotify BehaviorKind = iota
	// BehaviorMomentary highlights while held.
	BehaviorMomentary
	// BehaviorTrigger gates a note while held.
	BehaviorTrigger
	// BehaviorNavigate switches panels on press.
	BehaviorNavigate
	// BehaviorToggle flips a parameter on each press.
	BehaviorToggle
)

// Behavior decides what a Button does with a level change.
type Behavior struct {
	Kind  BehaviorKind
	Panel PanelID
	Param synth.Param
	// Gate also gates a note while a navigation button is held.
	Gate bool
}

func Notify() Behavior    { return Behavior{Kind: BehaviorNotify} }
func Momentary() Behavior { return Behavior{Kind: BehaviorMomentary} }
func Trigger() Behavior   { return Behavior{Kind: BehaviorTrigger} }

func Navigate(id PanelID) Behavior { return Behavior{Kind: BehaviorNavigate, Panel: id} }

// NavigateAndPlay switches to id on press and gates a note while held.
func NavigateAndPlay(id PanelID) Behavior {
	return Behavior{Kind: BehaviorNavigate, Panel: id, Gate: true}
}

func Toggle(p synth.Param) Behavior { return Behavior{Kind: BehaviorToggle, Param: p} }

// Gates reports whether holding the button keeps a note sounding.
func (b Behavior) Gates() bool {
	return b.Kind == BehaviorTrigger || (b.Kind == BehaviorNavigate && b.Gate)
}

// apply runs the behavior for a new level and returns the new highlight and
// whether the button must be repainted.
func (b Behavior) apply(pressed, highlight bool, out *Commands) (bool, bool) {
	switch b.Kind {
	case BehaviorMomentary:
		return pressed, pressed != highlight
	case BehaviorTrigger:
		out.Push(TriggerNote(pressed))
		return pressed, pressed != highlight
	case BehaviorNavigate:
		if pressed {
			out.Push(SwitchTo(b.Panel))
		}
		if b.Gate {
			out.Push(TriggerNote(pressed))
		}
		return pressed, pressed != highlight
	case BehaviorToggle:
		if !pressed {
			return highlight, false
		}
		out.Push(ToggleParam(b.Param))
		return !highlight, true
	default:
		return highlight, false
	}
}
