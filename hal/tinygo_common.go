//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"
)

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// machinePin is a board pin read as a button input.
type machinePin struct {
	name string
	pin  machine.Pin
	ok   bool
}

func (p *machinePin) Name() string { return p.name }

func (p *machinePin) Configure(pull GPIOPull) error {
	if err := checkPull(p.name, pull); err != nil {
		return err
	}
	m := machine.PinInput
	if pull == GPIOPullUp {
		m = machine.PinInputPullup
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	p.ok = true
	return nil
}

func (p *machinePin) Read() (bool, error) {
	if !p.ok {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.pin.Get(), nil
}

// uartMIDI writes MIDI bytes to the DIN output.
type uartMIDI struct {
	uart *machine.UART
}

func newUARTMIDI() *uartMIDI {
	uart := machine.UART1
	uart.Configure(machine.UARTConfig{
		BaudRate: 31250,
		TX:       machine.GP8,
		RX:       machine.GP9,
	})
	return &uartMIDI{uart: uart}
}

func (m *uartMIDI) Send(msg []byte) error {
	if m.uart == nil {
		return ErrNotImplemented
	}
	_, err := m.uart.Write(msg)
	return err
}

type nullFramebuffer struct{}

func (nullFramebuffer) Size() (x, y int16)                { return 0, 0 }
func (nullFramebuffer) SetPixel(x, y int16, c color.RGBA) {}
func (nullFramebuffer) Display() error                    { return ErrNotImplemented }
func (nullFramebuffer) Clear() error                      { return ErrNotImplemented }
func (nullFramebuffer) FlushRegion(x, y, w, h int) error  { return ErrNotImplemented }
