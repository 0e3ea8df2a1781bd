package hal

import (
	"errors"
	"image/color"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// Framebuffer is a 1-bit display buffer that is flushed to the panel by
// region.
//
// Size, SetPixel and Display match drivers.Displayer, so tinyfont and the
// widget layer draw into it directly. SetPixel only touches the buffer; the
// panel changes on Display or FlushRegion.
type Framebuffer interface {
	Size() (x, y int16)
	SetPixel(x, y int16, c color.RGBA)
	Display() error

	// Clear blanks the buffer and the panel.
	Clear() error
	// FlushRegion sends the pixels inside the box to the panel. The box is
	// clipped to the display; an empty box is a no-op.
	FlushRegion(x, y, w, h int) error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Encoders reads rotary encoder counters.
//
// Counts are absolute and wrap at Modulus.
type Encoders interface {
	Count() int
	Position(i int) int32
	Modulus() int32
}

// MIDIOut sends raw MIDI messages.
type MIDIOut interface {
	Send(msg []byte) error
}

// HAL provides the only contact point between the surface and the outside world.
type HAL interface {
	Logger() Logger
	LED() LED
	GPIO() GPIO
	Encoders() Encoders
	Display() Display
	MIDI() MIDIOut
}

type nullMIDI struct{}

func (nullMIDI) Send([]byte) error { return ErrNotImplemented }
