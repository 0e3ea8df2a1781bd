// Package app runs the poll-render loop of the control surface.
package app

import (
	"fmt"

	"surface/hal"
	"surface/panels"
	"surface/synth"
	"surface/ui"
)

// Stats counts what the loop has done.
type Stats struct {
	Steps           int
	Renders         int
	Flushes         int
	FlushErrors     int
	SkippedFrames   int
	Switches        int
	DroppedCommands int
}

// App owns the active panel and everything the loop touches.
//
// It is not safe for concurrent use; a single goroutine calls Step.
type App struct {
	log    hal.Logger
	cfg    Config
	fb     hal.Framebuffer
	enc    hal.Encoders
	engine synth.Engine
	params *synth.Params
	sw     *panels.Switcher

	pins    []hal.GPIOPin
	pinErr  []bool
	levels  []bool
	// gate is the last gate state sent to the engine.
	gate    bool
	cmds    ui.Commands
	scratch ui.Commands
	// pending is the screen area drawn but not yet flushed.
	pending ui.Rect
	stats   Stats

	midi       *synth.MIDI
	midiErrs   uint32
	queue      *synth.Queue
	queueDrops uint32
}

// New configures the inputs, clears the display and installs the start
// panel. Any error here is a configuration error: the surface cannot run.
func New(h hal.HAL, cfg Config, engine synth.Engine) (*App, error) {
	if engine == nil {
		engine = synth.Nop{}
	}
	a := &App{
		log:     h.Logger(),
		cfg:     cfg,
		enc:     h.Encoders(),
		engine:  engine,
		params:  synth.NewParams(),
		pending: ui.EmptyRect(),
	}

	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, fmt.Errorf("ui: no display")
	}
	a.fb = disp.Framebuffer()
	if err := a.fb.Clear(); err != nil {
		return nil, fmt.Errorf("ui: clear display: %w", err)
	}

	if err := a.configureInputs(h.GPIO()); err != nil {
		return nil, err
	}

	var modulus int32
	if a.enc != nil {
		modulus = a.enc.Modulus()
	}
	a.sw = panels.NewSwitcher(panels.NewRegistry(), panels.Env{Params: a.params, Modulus: modulus})
	if _, err := a.sw.SwitchTo(cfg.StartPanel, true); err != nil {
		return nil, fmt.Errorf("ui: start panel: %w", err)
	}
	a.stats.Switches++

	// The engine starts from the same values the knobs show.
	for p := synth.Param(0); p < synth.ParamCount; p++ {
		a.engine.SetParameter(p, a.params.Get(p))
	}
	return a, nil
}

func (a *App) configureInputs(gpio hal.GPIO) error {
	n := len(a.cfg.Inputs.Buttons)
	a.pins = make([]hal.GPIOPin, n)
	a.pinErr = make([]bool, n)
	a.levels = make([]bool, n)

	for i, b := range a.cfg.Inputs.Buttons {
		var pin hal.GPIOPin
		if gpio != nil {
			pin = gpio.Pin(b.Pin)
		}
		if pin == nil {
			return fmt.Errorf("gpio: button %d: no pin %d", b.ID, b.Pin)
		}
		pull := hal.GPIOPullNone
		if b.ActiveLow {
			pull = hal.GPIOPullUp
		}
		if err := pin.Configure(pull); err != nil {
			return err
		}
		a.pins[i] = pin
	}

	for _, k := range a.cfg.Inputs.Knobs {
		if a.enc == nil || k.Encoder < 0 || k.Encoder >= a.enc.Count() {
			return fmt.Errorf("encoders: knob %d: no encoder %d", k.ID, k.Encoder)
		}
	}
	return nil
}

// watchMIDI makes the loop report send failures of m.
func (a *App) watchMIDI(m *synth.MIDI) { a.midi = m }

// watchQueue makes the loop report events dropped by q.
func (a *App) watchQueue(q *synth.Queue) { a.queue = q }

func (a *App) Stats() Stats          { return a.stats }
func (a *App) Active() ui.PanelID    { return a.sw.Slot().ID() }
func (a *App) Panel() *ui.Panel      { return a.sw.Active() }
func (a *App) Params() *synth.Params { return a.params }

// Status is a one-line summary of the active panel and the loop counters.
func (a *App) Status() string {
	s := a.stats
	return fmt.Sprintf("%s steps=%d flushes=%d flusherr=%d skipped=%d dropped=%d switches=%d",
		panels.Name(a.Active()), s.Steps, s.Flushes, s.FlushErrors, s.SkippedFrames, s.DroppedCommands, s.Switches)
}

// Step runs one poll iteration: read every input, dispatch it to the active
// panel, apply the resulting commands, then repaint and flush what changed.
//
// It never fails; the error return lets it run under the host runners.
func (a *App) Step() error {
	a.stats.Steps++
	a.cmds.Reset()

	p := a.sw.Active()
	a.dispatch(p, &a.cmds)
	a.apply()
	a.render()
	a.report()
	return nil
}

// dispatch feeds knobs first, then buttons.
func (a *App) dispatch(p *ui.Panel, out *ui.Commands) {
	for _, k := range a.cfg.Inputs.Knobs {
		p.InputUpdate(k.ID, ui.Int(a.enc.Position(k.Encoder)), out)
	}
	for i, b := range a.cfg.Inputs.Buttons {
		a.levels[i] = a.pressed(i)
		p.InputUpdate(b.ID, ui.Bool(a.levels[i]), out)
	}
}

// pressed reads button i. A pin that fails to read counts as released and
// is reported once.
func (a *App) pressed(i int) bool {
	level, err := a.pins[i].Read()
	if err != nil {
		if !a.pinErr[i] {
			a.pinErr[i] = true
			a.log.WriteLineString(fmt.Sprintf("gpio: button %d: %v", a.cfg.Inputs.Buttons[i].ID, err))
		}
		return false
	}
	a.pinErr[i] = false
	if a.cfg.Inputs.Buttons[i].ActiveLow {
		return !level
	}
	return level
}

// apply runs the commands in order. Panel switches take effect after the
// others; when several are requested the last one wins.
func (a *App) apply() {
	var (
		target    ui.PanelID
		switching bool
	)
	for _, c := range a.cmds.Slice() {
		switch c.Kind {
		case ui.CmdSwitchTo:
			target, switching = c.Panel, true
		case ui.CmdTriggerNote:
			a.setGate(c.Gate)
		case ui.CmdSetParam:
			if v, changed := a.params.Set(c.Param, c.Value); changed {
				a.engine.SetParameter(c.Param, v)
			}
		case ui.CmdToggleParam:
			a.engine.SetParameter(c.Param, a.params.Toggle(c.Param))
		}
	}
	if n := a.cmds.Dropped(); n > 0 {
		a.stats.DroppedCommands += n
		a.log.WriteLineString(fmt.Sprintf("ui: %d commands dropped", n))
	}
	if switching {
		a.switchTo(target)
	}
}

func (a *App) switchTo(id ui.PanelID) {
	changed, err := a.sw.SwitchTo(id, false)
	if err != nil {
		a.log.WriteLineString("ui: " + err.Error())
		return
	}
	if !changed {
		return
	}
	a.stats.Switches++

	// The new widgets start from the current levels so a button still held
	// from the switch does not fire on the new panel.
	a.scratch.Reset()
	a.dispatch(a.sw.Active(), &a.scratch)

	// Only a held gating button can close the gate later; without one on
	// the new panel the note would hang.
	if a.gate && !a.gateHeld(a.sw.Active()) {
		a.setGate(false)
	}

	// Widgets of the old panel may sit where the new one draws nothing.
	w, h := a.fb.Size()
	blank(a.fb, int(w), int(h))
	a.pending = ui.Rect{W: int(w), H: int(h)}
}

func (a *App) setGate(on bool) {
	a.gate = on
	a.engine.SetGate(on)
}

// gateHeld reports whether a button of p that gates the note is held.
func (a *App) gateHeld(p *ui.Panel) bool {
	for _, b := range p.Buttons() {
		if !b.Behavior().Gates() {
			continue
		}
		for i, in := range a.cfg.Inputs.Buttons {
			if in.ID == b.Input() && a.levels[i] {
				return true
			}
		}
	}
	return false
}

func (a *App) render() {
	p := a.sw.Active()
	if !p.IsDirty() && a.pending.Empty() {
		return
	}
	a.stats.Renders++

	w, h := a.fb.Size()
	r := a.pending.Cover(p.Render(a.fb)).Clip(int(w), int(h))
	if r.Empty() {
		a.pending = ui.EmptyRect()
		return
	}

	var err error
	for attempt := 0; attempt <= a.cfg.FlushRetries; attempt++ {
		if err = a.fb.FlushRegion(r.X, r.Y, r.W, r.H); err == nil {
			break
		}
		a.stats.FlushErrors++
		a.log.WriteLineString(fmt.Sprintf("ui: flush failed (attempt %d): %v", attempt+1, err))
	}
	if err != nil {
		a.stats.SkippedFrames++
		a.pending = r
		return
	}
	a.stats.Flushes++
	a.pending = ui.EmptyRect()
}

// report logs new engine-side failures.
func (a *App) report() {
	if a.midi != nil {
		if n, err := a.midi.Errors(); n != a.midiErrs {
			a.midiErrs = n
			a.log.WriteLineString(fmt.Sprintf("synth: %d midi send errors, last: %v", n, err))
		}
	}
	if a.queue != nil {
		if n := a.queue.Dropped(); n != a.queueDrops {
			a.queueDrops = n
			a.log.WriteLineString(fmt.Sprintf("synth: %d engine events dropped", n))
		}
	}
}

func blank(fb hal.Framebuffer, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fb.SetPixel(int16(x), int16(y), ui.Off)
		}
	}
}
