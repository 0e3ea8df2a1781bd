package app

import (
	"context"
	"errors"
	"runtime"

	"surface/hal"
	"surface/internal/buildinfo"
	"surface/panels"
	"surface/synth"

	"gitlab.com/gomidi/midi/v2"
)

// gateLED lights the board LED while a note is gated.
type gateLED struct {
	led hal.LED
}

func (g gateLED) SetParameter(synth.Param, float32) {}

func (g gateLED) SetGate(on bool) {
	if g.led == nil {
		return
	}
	if on {
		g.led.High()
	} else {
		g.led.Low()
	}
}

// midiSender adapts a HAL MIDI port to the engine's message sink. A board
// without MIDI output is not an error.
func midiSender(out hal.MIDIOut) func(midi.Message) error {
	if out == nil {
		return nil
	}
	return func(msg midi.Message) error {
		if err := out.Send(msg); err != nil && !errors.Is(err, hal.ErrNotImplemented) {
			return err
		}
		return nil
	}
}

// NewWithConfig builds the surface on h. Engine events go through a queue
// drained by a goroutine that lives as long as ctx; they reach the MIDI
// output and the gate LED.
//
// On a configuration error the fatal screen is shown and the error returned.
func NewWithConfig(ctx context.Context, h hal.HAL, cfg Config) (func() error, error) {
	a, err := build(ctx, h, cfg)
	if err != nil {
		return nil, err
	}
	return a.Step, nil
}

func build(ctx context.Context, h hal.HAL, cfg Config) (*App, error) {
	m := synth.NewMIDI(midiSender(h.MIDI()), cfg.MIDIChannel, cfg.MIDINote)
	q := synth.NewQueue()
	go q.Run(ctx, synth.Fanout{m, gateLED{led: h.LED()}})

	a, err := New(h, cfg, q)
	if err != nil {
		fatal(h, err)
		return nil, err
	}
	a.watchMIDI(m)
	a.watchQueue(q)
	h.Logger().WriteLineString(buildinfo.Banner("surface") + ": ready, panel " + panels.Name(a.Active()))
	return a, nil
}

// diagEvery is how many steps pass between boot diagnostic updates.
const diagEvery = 256

// Run starts the surface and polls forever (TinyGo entrypoint).
func Run(h hal.HAL) {
	bootDiagStart(h)
	bootScreen(h, "starting")
	a, err := build(context.Background(), h, DefaultConfig())
	if err != nil {
		bootDiagSetStep("fatal: " + err.Error())
		select {}
	}
	bootDiagSetStep(a.Status())
	spin(reporting(a, diagEvery), runtime.Gosched, 0)
}

// reporting wraps a.Step so that every n steps the boot diagnostics get
// the loop status. Without diagnostics built in it is a.Step itself.
func reporting(a *App, n int) func() error {
	if !bootDiagEnabled || n <= 0 {
		return a.Step
	}
	return func() error {
		err := a.Step()
		if a.stats.Steps%n == 0 {
			bootDiagSetStep(a.Status())
		}
		return err
	}
}

// spin calls step then yield, n times, or forever when n <= 0. The yield
// lets the queue goroutine run on a cooperative scheduler.
func spin(step func() error, yield func(), n int) {
	for i := 0; n <= 0 || i < n; i++ {
		_ = step()
		yield()
	}
}
