package synth

import (
	"sync/atomic"

	"gitlab.com/gomidi/midi/v2"
)

// MIDI mirrors parameter and gate changes to an external synthesizer.
//
// Parameters become control changes on the configured channel using each
// Spec's CC number; the gate becomes note on/off of a fixed note. Send errors
// are counted, never returned, since Engine calls are fire-and-forget.
type MIDI struct {
	send     func(midi.Message) error
	channel  uint8
	note     uint8
	velocity uint8

	gate    bool
	lastCC  [ParamCount]int16
	errs    atomic.Uint32
	lastErr atomic.Value // sendErr
}

type sendErr struct{ err error }

// NewMIDI returns a MIDI engine writing through send. channel is 0-based.
func NewMIDI(send func(midi.Message) error, channel, note uint8) *MIDI {
	m := &MIDI{
		send:     send,
		channel:  channel & 0x0F,
		note:     note & 0x7F,
		velocity: 100,
	}
	for i := range m.lastCC {
		m.lastCC[i] = -1
	}
	return m
}

// SetParameter sends the control change if the 7-bit value moved.
func (m *MIDI) SetParameter(p Param, v float32) {
	if !p.Valid() {
		return
	}
	s := p.Spec()
	val := s.MIDIValue(v)
	if m.lastCC[p] == int16(val) {
		return
	}
	m.lastCC[p] = int16(val)
	m.write(midi.ControlChange(m.channel, s.CC, val))
}

// SetGate sends note on/off on gate edges.
func (m *MIDI) SetGate(on bool) {
	if on == m.gate {
		return
	}
	m.gate = on
	if on {
		m.write(midi.NoteOn(m.channel, m.note, m.velocity))
		return
	}
	m.write(midi.NoteOff(m.channel, m.note))
}

// Errors returns the number of failed sends and the most recent error.
func (m *MIDI) Errors() (uint32, error) {
	n := m.errs.Load()
	if v, ok := m.lastErr.Load().(sendErr); ok {
		return n, v.err
	}
	return n, nil
}

func (m *MIDI) write(msg midi.Message) {
	if m.send == nil {
		return
	}
	if err := m.send(msg); err != nil {
		m.errs.Add(1)
		m.lastErr.Store(sendErr{err: err})
	}
}
