//go:build !tinygo && cgo

package hal

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver
)

type hostMIDI struct {
	name string
	send func(midi.Message) error
}

// openMIDIPort opens the first output port whose name contains name.
func openMIDIPort(name string) (MIDIOut, error) {
	outs := midi.GetOutPorts()
	for _, port := range outs {
		if !strings.Contains(strings.ToLower(port.String()), strings.ToLower(name)) {
			continue
		}
		send, err := midi.SendTo(port)
		if err != nil {
			return nil, fmt.Errorf("open %q: %w", port.String(), err)
		}
		return &hostMIDI{name: port.String(), send: send}, nil
	}
	return nil, fmt.Errorf("no output port matching %q (%d ports)", name, len(outs))
}

func (m *hostMIDI) Send(msg []byte) error {
	if err := m.send(midi.Message(msg)); err != nil {
		return fmt.Errorf("midi: %s: %w", m.name, err)
	}
	return nil
}

// MIDIPorts lists the available output ports.
func MIDIPorts() []string {
	var names []string
	for _, port := range midi.GetOutPorts() {
		names = append(names, port.String())
	}
	return names
}

// CloseMIDI releases the MIDI driver.
func CloseMIDI() {
	midi.CloseDriver()
}
