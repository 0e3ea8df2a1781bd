package app

import (
	"surface/panels"
	"surface/ui"
)

// ButtonInput binds a GPIO pin to a button id.
type ButtonInput struct {
	ID  ui.InputID
	Pin int
	// ActiveLow buttons short the pin to ground when pressed.
	ActiveLow bool
}

// KnobInput binds an encoder counter to a knob id.
type KnobInput struct {
	ID      ui.InputID
	Encoder int
}

// InputMap is the fixed assignment of hardware inputs to ids.
type InputMap struct {
	Buttons []ButtonInput
	Knobs   []KnobInput
}

// DefaultInputMap is the front panel: five active-low buttons on pins 0-4
// and four encoders.
func DefaultInputMap() InputMap {
	var m InputMap
	for i := 0; i < panels.NumButtons; i++ {
		m.Buttons = append(m.Buttons, ButtonInput{ID: panels.ButtonInput(i), Pin: i, ActiveLow: true})
	}
	for i := 0; i < panels.NumKnobs; i++ {
		m.Knobs = append(m.Knobs, KnobInput{ID: panels.KnobInput(i), Encoder: i})
	}
	return m
}

// Config controls the poll loop.
type Config struct {
	Inputs     InputMap
	StartPanel ui.PanelID

	// FlushRetries is how many times a failed flush is retried before the
	// frame is skipped and its region carried into the next one.
	FlushRetries int

	// MIDIChannel (0-15) and MIDINote are used for the gate.
	MIDIChannel uint8
	MIDINote    uint8
}

func DefaultConfig() Config {
	return Config{
		Inputs:       DefaultInputMap(),
		StartPanel:   panels.Bow,
		FlushRetries: 1,
		MIDIChannel:  0,
		MIDINote:     60,
	}
}
