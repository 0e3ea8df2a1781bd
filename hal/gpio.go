package hal

import (
	"fmt"
	"sync"
	"time"
)

// GPIOPull selects the pull resistor of an input pin.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
)

// GPIO provides access to the button input pins.
//
// Implementations may return nil if GPIO is unsupported.
type GPIO interface {
	PinCount() int
	Pin(id int) GPIOPin
}

// GPIOPin is a single digital input.
type GPIOPin interface {
	Name() string
	Configure(pull GPIOPull) error
	Read() (level bool, err error)
}

type nullGPIO struct{}

func (nullGPIO) PinCount() int      { return 0 }
func (nullGPIO) Pin(id int) GPIOPin { return nil }

type pinList []GPIOPin

func newVirtualGPIO(pins []GPIOPin) GPIO {
	if len(pins) == 0 {
		return nullGPIO{}
	}
	return pinList(pins)
}

func (l pinList) PinCount() int { return len(l) }

func (l pinList) Pin(id int) GPIOPin {
	if id < 0 || id >= len(l) {
		return nil
	}
	return l[id]
}

func checkPull(name string, pull GPIOPull) error {
	if pull != GPIOPullNone && pull != GPIOPullUp {
		return fmt.Errorf("gpio: pin %s: invalid pull", name)
	}
	return nil
}

// virtualPin is a host button. Until something drives it, it reads the
// level its pull resistor gives.
type virtualPin struct {
	mu         sync.Mutex
	name       string
	configured bool
	pull       GPIOPull
	level      bool
	held       bool
}

func newVirtualPin(name string) *virtualPin {
	return &virtualPin{name: name}
}

func (p *virtualPin) Name() string { return p.name }

func (p *virtualPin) Configure(pull GPIOPull) error {
	if err := checkPull(p.name, pull); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.configured = true
	p.pull = pull
	if !p.held {
		p.level = pull == GPIOPullUp
	}
	return nil
}

// drive forces the level seen by Read, as a switch to ground or VCC would.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	p.held = true
}

// release lets the pull resistor set the level again.
func (p *virtualPin) release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.held = false
	p.level = p.pull == GPIOPullUp
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.configured {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.level, nil
}

// pressPin is an active-low button that presses itself: from start on it
// reads low for width out of every period.
type pressPin struct {
	name       string
	now        func() time.Time
	t0         time.Time
	period     time.Duration
	width      time.Duration
	configured bool
}

func newPressPin(name string, period, width, start time.Duration, now func() time.Time) *pressPin {
	if now == nil {
		now = time.Now
	}
	if period <= 0 {
		period = time.Second
	}
	width = min(max(width, 0), period)
	return &pressPin{name: name, now: now, t0: now().Add(start), period: period, width: width}
}

func (p *pressPin) Name() string { return p.name }

func (p *pressPin) Configure(pull GPIOPull) error {
	if err := checkPull(p.name, pull); err != nil {
		return err
	}
	p.configured = true
	return nil
}

func (p *pressPin) Read() (bool, error) {
	if !p.configured {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	elapsed := p.now().Sub(p.t0)
	if elapsed < 0 {
		return true, nil
	}
	return elapsed%p.period >= p.width, nil
}
