//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers/encoders"
)

// Pin assignment of the RP2040 front-panel board.
var (
	buttonPins  = []machine.Pin{machine.GP2, machine.GP3, machine.GP4, machine.GP5, machine.GP6}
	encoderPins = [][2]machine.Pin{
		{machine.GP10, machine.GP11},
		{machine.GP12, machine.GP13},
		{machine.GP14, machine.GP15},
		{machine.GP18, machine.GP19},
	}
)

const (
	displayAddr   = 0x3C
	displayWidth  = 128
	displayHeight = 64

	// encoderModulus wraps the driver's position like a 16-bit timer counter.
	encoderModulus = 1 << 16
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	gpio   GPIO
	enc    Encoders
	fb     Framebuffer
	midi   MIDIOut
}

// New returns the RP2040 HAL implementation.
//
// UART0 on GP0 (TX) / GP1 (RX), 115200 8N1: log.
// UART1 on GP8 (TX), 31250 8N1: DIN MIDI out.
// I2C0 on GP20 (SDA) / GP21 (SCL): SSD1306 display.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	var pins []GPIOPin
	for i, p := range buttonPins {
		pins = append(pins, &machinePin{name: "BTN" + string(rune('1'+i)), pin: p})
	}

	devs := make([]*encoders.QuadratureDevice, 0, len(encoderPins))
	for _, ab := range encoderPins {
		enc := encoders.NewQuadratureViaInterrupt(ab[0], ab[1])
		enc.Configure(encoders.QuadratureConfig{Precision: 4})
		devs = append(devs, enc)
	}

	h := &tinyGoHAL{
		logger: logger,
		led:    &pinLED{pin: ledPin},
		gpio:   newVirtualGPIO(pins),
		enc:    &quadEncoders{devs: devs, modulus: encoderModulus},
		midi:   newUARTMIDI(),
	}

	fb, err := newSSD1306(machine.I2C0, machine.GP20, machine.GP21)
	if err != nil {
		logger.WriteLineString("display: " + err.Error())
		h.fb = nullFramebuffer{}
	} else {
		h.fb = fb
	}
	return h
}

func (h *tinyGoHAL) Logger() Logger     { return h.logger }
func (h *tinyGoHAL) LED() LED           { return h.led }
func (h *tinyGoHAL) GPIO() GPIO         { return h.gpio }
func (h *tinyGoHAL) Encoders() Encoders { return h.enc }
func (h *tinyGoHAL) Display() Display   { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) MIDI() MIDIOut      { return h.midi }

type quadEncoders struct {
	devs    []*encoders.QuadratureDevice
	modulus int32
}

func (e *quadEncoders) Count() int     { return len(e.devs) }
func (e *quadEncoders) Modulus() int32 { return e.modulus }

func (e *quadEncoders) Position(i int) int32 {
	if i < 0 || i >= len(e.devs) {
		return 0
	}
	return wrapCount(int64(e.devs[i].Position()), e.modulus)
}
