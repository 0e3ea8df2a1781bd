//go:build !tinygo && !cgo

package hal

import "errors"

func openMIDIPort(name string) (MIDIOut, error) {
	return nil, errors.New("MIDI output requires cgo (build/run with CGO_ENABLED=1)")
}

func MIDIPorts() []string { return nil }

func CloseMIDI() {}
