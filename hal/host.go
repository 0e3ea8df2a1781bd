//go:build !tinygo

package hal

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// HostConfig sizes the simulated front panel.
type HostConfig struct {
	Buttons  int
	Encoders int
	// Modulus is the wrap of the simulated encoder counters.
	Modulus int32
	Width   int
	Height  int
	// Demo replaces the buttons with pins that press themselves.
	Demo bool
	// MIDIPort is the name (or part of it) of the MIDI output port to open.
	// Empty keeps MIDI output disabled.
	MIDIPort string
}

// DefaultHostConfig matches the hardware: five buttons, four encoders
// with 16-bit counters and a 128x64 display.
func DefaultHostConfig() HostConfig {
	return HostConfig{Buttons: 5, Encoders: 4, Modulus: 1 << 16, Width: 128, Height: 64}
}

type hostHAL struct {
	logger  *hostLogger
	led     *hostLED
	gpio    GPIO
	buttons []*virtualPin
	enc     *virtualEncoders
	fb      *hostFramebuffer
	midi    MIDIOut
}

// New returns a host HAL with the default configuration.
func New() HAL {
	return newHost(DefaultHostConfig())
}

// NewHost returns a host HAL for cfg.
func NewHost(cfg HostConfig) HAL {
	return newHost(cfg)
}

func newHost(cfg HostConfig) *hostHAL {
	d := DefaultHostConfig()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.Buttons < 0 {
		cfg.Buttons = 0
	}

	logger := &hostLogger{w: os.Stdout}
	h := &hostHAL{
		logger: logger,
		led:    &hostLED{logger: logger},
		enc:    newVirtualEncoders(cfg.Encoders, cfg.Modulus),
		fb:     newHostFramebuffer(cfg.Width, cfg.Height),
		midi:   nullMIDI{},
	}

	var pins []GPIOPin
	for i := 0; i < cfg.Buttons; i++ {
		name := fmt.Sprintf("BTN%d", i+1)
		if cfg.Demo {
			// Staggered presses so every tab gets visited.
			period := time.Duration(cfg.Buttons) * demoStagger
			start := time.Duration(i)*demoStagger + time.Second
			pins = append(pins, newPressPin(name, period, 300*time.Millisecond, start, time.Now))
			continue
		}
		p := newVirtualPin(name)
		h.buttons = append(h.buttons, p)
		pins = append(pins, p)
	}
	h.gpio = newVirtualGPIO(pins)

	if cfg.MIDIPort != "" {
		out, err := openMIDIPort(cfg.MIDIPort)
		if err != nil {
			logger.WriteLineString("midi: " + err.Error())
		} else {
			h.midi = out
		}
	}
	return h
}

const demoStagger = 1500 * time.Millisecond

func (h *hostHAL) Logger() Logger     { return h.logger }
func (h *hostHAL) LED() LED           { return h.led }
func (h *hostHAL) GPIO() GPIO         { return h.gpio }
func (h *hostHAL) Encoders() Encoders { return h.enc }
func (h *hostHAL) Display() Display   { return hostDisplay{fb: h.fb} }
func (h *hostHAL) MIDI() MIDIOut      { return h.midi }

// press simulates button i being held (active low).
func (h *hostHAL) press(i int, down bool) {
	if i < 0 || i >= len(h.buttons) {
		return
	}
	if down {
		h.buttons[i].drive(false)
	} else {
		h.buttons[i].release()
	}
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  *os.File
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostLED struct {
	mu     sync.Mutex
	on     bool
	logger *hostLogger
}

func (l *hostLED) High() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.on {
		return
	}
	l.on = true
	l.logger.WriteLineString("led: HIGH")
}

func (l *hostLED) Low() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.on {
		return
	}
	l.on = false
	l.logger.WriteLineString("led: LOW")
}

func (l *hostLED) lit() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}
