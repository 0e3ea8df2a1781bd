package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"surface/hal"
	"surface/panels"
	"surface/synth"
	"surface/ui"
)

type testLog struct{ lines []string }

func (l *testLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLog) count(sub string) int {
	n := 0
	for _, s := range l.lines {
		if strings.Contains(s, sub) {
			n++
		}
	}
	return n
}

type testPin struct {
	level bool
	err   error
	pull  hal.GPIOPull
}

func (p *testPin) Name() string        { return "pin" }
func (p *testPin) Read() (bool, error) { return p.level, p.err }

func (p *testPin) Configure(pull hal.GPIOPull) error {
	p.pull = pull
	return nil
}

type testGPIO []*testPin

func (g testGPIO) PinCount() int { return len(g) }

func (g testGPIO) Pin(id int) hal.GPIOPin {
	if id < 0 || id >= len(g) {
		return nil
	}
	return g[id]
}

type testEncoders struct{ pos [4]int32 }

func (e *testEncoders) Count() int           { return len(e.pos) }
func (e *testEncoders) Position(i int) int32 { return e.pos[i] }
func (e *testEncoders) Modulus() int32       { return 256 }

type flush struct{ x, y, w, h int }

type testFB struct {
	flushes  []flush
	failures int
	clearErr error
}

func (f *testFB) Size() (x, y int16)                { return 128, 64 }
func (f *testFB) SetPixel(x, y int16, c color.RGBA) {}
func (f *testFB) Display() error                    { return f.FlushRegion(0, 0, 128, 64) }
func (f *testFB) Clear() error                      { return f.clearErr }

func (f *testFB) FlushRegion(x, y, w, h int) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("i2c nack")
	}
	f.flushes = append(f.flushes, flush{x, y, w, h})
	return nil
}

type testDisplay struct{ fb hal.Framebuffer }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

// testLED is driven from the engine goroutine.
type testLED struct{ on atomic.Bool }

func (l *testLED) High() { l.on.Store(true) }
func (l *testLED) Low()  { l.on.Store(false) }

type testHAL struct {
	log  *testLog
	led  *testLED
	gpio testGPIO
	enc  *testEncoders
	fb   *testFB

	mu   sync.Mutex
	sent [][]byte
}

func newTestHAL() *testHAL {
	h := &testHAL{log: &testLog{}, led: &testLED{}, enc: &testEncoders{}, fb: &testFB{}}
	for i := 0; i < panels.NumButtons; i++ {
		h.gpio = append(h.gpio, &testPin{level: true})
	}
	return h
}

func (h *testHAL) Logger() hal.Logger     { return h.log }
func (h *testHAL) LED() hal.LED           { return h.led }
func (h *testHAL) GPIO() hal.GPIO         { return h.gpio }
func (h *testHAL) Encoders() hal.Encoders { return h.enc }
func (h *testHAL) Display() hal.Display   { return testDisplay{fb: h.fb} }
func (h *testHAL) MIDI() hal.MIDIOut      { return h }

func (h *testHAL) Send(msg []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent = append(h.sent, append([]byte(nil), msg...))
	return nil
}

func (h *testHAL) sentMessage(want []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, m := range h.sent {
		if bytes.Equal(m, want) {
			return true
		}
	}
	return false
}

// press holds button i down (the pins are active low).
func (h *testHAL) press(i int, down bool) { h.gpio[i].level = !down }

type recorder struct {
	params []synth.Param
	gates  []bool
}

func (r *recorder) SetParameter(p synth.Param, _ float32) { r.params = append(r.params, p) }
func (r *recorder) SetGate(on bool)                       { r.gates = append(r.gates, on) }

func newTestApp(t *testing.T, h *testHAL) (*App, *recorder) {
	t.Helper()
	rec := &recorder{}
	a, err := New(h, DefaultConfig(), rec)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec.params = nil
	return a, rec
}

func TestFirstStepPaintsPanel(t *testing.T) {
	h := newTestHAL()
	a, _ := newTestApp(t, h)

	if a.Active() != panels.Bow {
		t.Fatalf("Active() = %s, want bow", panels.Name(a.Active()))
	}
	a.Step()
	if len(h.fb.flushes) != 1 {
		t.Fatalf("flushes = %d, want 1", len(h.fb.flushes))
	}
	b := a.Panel().Bounds().Clip(128, 64)
	if got := h.fb.flushes[0]; got != (flush{b.X, b.Y, b.W, b.H}) {
		t.Fatalf("flush = %+v, want panel bounds %+v", got, b)
	}

	a.Step()
	if len(h.fb.flushes) != 1 {
		t.Fatal("idle step flushed")
	}
}

func TestKnobTurnFlushesKnobOnly(t *testing.T) {
	h := newTestHAL()
	a, rec := newTestApp(t, h)
	a.Step()

	h.enc.pos[0] = 3
	a.Step()
	if got := a.Params().Get(synth.ExcBowLevel); got < 0.029 || got > 0.031 {
		t.Fatalf("bow level = %v, want 0.03", got)
	}
	if len(rec.params) != 1 || rec.params[0] != synth.ExcBowLevel {
		t.Fatalf("engine params = %v", rec.params)
	}
	k := a.Panel().Knob(0).Bounds()
	if got := h.fb.flushes[len(h.fb.flushes)-1]; got != (flush{k.X, k.Y, k.W, k.H}) {
		t.Fatalf("flush = %+v, want knob box %+v", got, k)
	}
}

func TestEncoderWrapIsSmallTurn(t *testing.T) {
	h := newTestHAL()
	h.enc.pos[0] = 255
	a, _ := newTestApp(t, h)
	a.Step()

	h.enc.pos[0] = 1
	a.Step()
	if got := a.Params().Get(synth.ExcBowLevel); got < 0.019 || got > 0.021 {
		t.Fatalf("bow level = %v, want 0.02", got)
	}
}

func TestSwitchRepaintsWholeScreen(t *testing.T) {
	h := newTestHAL()
	a, rec := newTestApp(t, h)
	a.Step()

	h.press(3, true) // Res tab
	a.Step()
	if a.Active() != panels.Res1 {
		t.Fatalf("Active() = %s, want res1", panels.Name(a.Active()))
	}
	if got := h.fb.flushes[len(h.fb.flushes)-1]; got != (flush{0, 0, 128, 64}) {
		t.Fatalf("flush after switch = %+v, want full screen", got)
	}

	// Holding the key must not bounce back through the new panel's
	// button on the same input.
	a.Step()
	h.press(3, false)
	a.Step()
	if a.Active() != panels.Res1 {
		t.Fatalf("Active() = %s after release, want res1", panels.Name(a.Active()))
	}
	if len(rec.gates) != 0 {
		t.Fatalf("gates = %v, want none", rec.gates)
	}
}

func TestExciterTabPlaysNote(t *testing.T) {
	h := newTestHAL()
	a, rec := newTestApp(t, h)
	a.Step()

	h.press(1, true) // Blw tab
	a.Step()
	a.Step()
	h.press(1, false)
	a.Step()

	if a.Active() != panels.Blow {
		t.Fatalf("Active() = %s, want blow", panels.Name(a.Active()))
	}
	if fmt.Sprint(rec.gates) != "[true false]" {
		t.Fatalf("gates = %v, want [true false]", rec.gates)
	}
}

func TestSwitchAwayFromHeldGateReleasesNote(t *testing.T) {
	tests := []struct {
		name   string
		start  ui.PanelID
		gating int // held button that opens the gate
		nav    int // button pressed while holding it
	}{
		{"bow tab then res", panels.Bow, 0, 3},
		{"sys note then res", panels.Sys, 1, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHAL()
			cfg := DefaultConfig()
			cfg.StartPanel = tt.start
			rec := &recorder{}
			a, err := New(h, cfg, rec)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			a.Step()

			h.press(tt.gating, true)
			a.Step()
			h.press(tt.nav, true)
			a.Step()
			if a.Active() != panels.Res1 {
				t.Fatalf("Active() = %s, want res1", panels.Name(a.Active()))
			}
			h.press(tt.nav, false)
			a.Step()
			h.press(tt.gating, false)
			a.Step()
			a.Step()

			if fmt.Sprint(rec.gates) != "[true false]" {
				t.Fatalf("gates = %v, want [true false]", rec.gates)
			}
		})
	}
}

func TestFlushFailureRetriesThenCarries(t *testing.T) {
	h := newTestHAL()
	a, _ := newTestApp(t, h)
	a.Step()

	h.fb.failures = 2
	h.enc.pos[1] = 1
	a.Step()
	if s := a.Stats(); s.FlushErrors != 2 || s.SkippedFrames != 1 {
		t.Fatalf("stats = %+v, want 2 errors and 1 skipped frame", s)
	}
	if h.log.count("flush failed") != 2 {
		t.Fatalf("log = %q", h.log.lines)
	}
	knob := a.Panel().Knob(1).Bounds()

	// Next frame changes a different widget; the flush covers both.
	h.enc.pos[0] = 1
	a.Step()
	want := knob.Cover(a.Panel().Knob(0).Bounds())
	if got := h.fb.flushes[len(h.fb.flushes)-1]; got != (flush{want.X, want.Y, want.W, want.H}) {
		t.Fatalf("flush = %+v, want %+v", got, want)
	}

	// The carried region alone is enough to flush.
	h.fb.failures = 2
	h.enc.pos[0] = 2
	a.Step()
	n := len(h.fb.flushes)
	a.Step()
	if len(h.fb.flushes) != n+1 {
		t.Fatal("carried region not flushed on an idle step")
	}
}

func TestPinErrorLoggedOnce(t *testing.T) {
	h := newTestHAL()
	h.gpio[2].err = errors.New("bus fault")
	a, rec := newTestApp(t, h)
	for i := 0; i < 3; i++ {
		a.Step()
	}
	if n := h.log.count("bus fault"); n != 1 {
		t.Fatalf("pin error logged %d times, want 1", n)
	}
	if len(rec.gates) != 0 || a.Active() != panels.Bow {
		t.Fatal("failing pin acted as pressed")
	}
}

func TestToggleParam(t *testing.T) {
	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.StartPanel = panels.Sys
	a, err := New(h, cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	a.Step()
	h.press(0, true)
	a.Step()
	if !a.Params().On(synth.SysMono) {
		t.Fatal("mono not toggled on")
	}
	h.press(0, false)
	a.Step()
	h.press(0, true)
	a.Step()
	if a.Params().On(synth.SysMono) {
		t.Fatal("mono not toggled off")
	}
}

func TestConfigurationErrors(t *testing.T) {
	h := newTestHAL()
	h.fb.clearErr = errors.New("no ack")
	if _, err := New(h, DefaultConfig(), nil); err == nil || !strings.Contains(err.Error(), "clear display") {
		t.Fatalf("New() error = %v, want clear display failure", err)
	}

	h = newTestHAL()
	cfg := DefaultConfig()
	cfg.StartPanel = ui.PanelID(200)
	if _, err := New(h, cfg, nil); !errors.Is(err, panels.ErrUnknownPanel) {
		t.Fatalf("New() error = %v, want ErrUnknownPanel", err)
	}

	h = newTestHAL()
	h.gpio = h.gpio[:2]
	if _, err := New(h, DefaultConfig(), nil); err == nil {
		t.Fatal("New() with missing pins succeeded")
	}
}

func TestButtonPinsPulledUp(t *testing.T) {
	h := newTestHAL()
	newTestApp(t, h)
	for i, p := range h.gpio {
		if p.pull != hal.GPIOPullUp {
			t.Fatalf("pin %d pull = %d, want pull-up", i, p.pull)
		}
	}
}

func TestGateLED(t *testing.T) {
	led := &testLED{}
	g := gateLED{led: led}
	g.SetGate(true)
	if !led.on.Load() {
		t.Fatal("LED off while gated")
	}
	g.SetGate(false)
	if led.on.Load() {
		t.Fatal("LED on after gate release")
	}
}

func TestNewWithConfigDrivesMIDI(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newTestHAL()
	cfg := DefaultConfig()
	cfg.MIDIChannel = 2
	step, err := NewWithConfig(ctx, h, cfg)
	if err != nil {
		t.Fatalf("NewWithConfig() error = %v", err)
	}
	if h.log.count("ready, panel bow") != 1 {
		t.Fatalf("log = %q", h.log.lines)
	}

	step()
	h.press(0, true) // Bow tab sounds the note
	step()

	noteOn := []byte{0x92, 60, 100}
	deadline := time.Now().Add(2 * time.Second)
	for !h.sentMessage(noteOn) || !h.led.on.Load() {
		if time.Now().After(deadline) {
			t.Fatal("note on never reached MIDI and LED")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestNewWithConfigShowsFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := newTestHAL()
	h.gpio = nil
	if _, err := NewWithConfig(ctx, h, DefaultConfig()); err == nil {
		t.Fatal("NewWithConfig() without GPIO succeeded")
	}
	if h.log.count("surface: fatal: gpio") != 1 {
		t.Fatalf("log = %q, want one fatal line", h.log.lines)
	}
}

func TestSpinYieldsBetweenSteps(t *testing.T) {
	var trace []string
	step := func() error {
		trace = append(trace, "step")
		return errors.New("ignored")
	}
	spin(step, func() { trace = append(trace, "yield") }, 3)

	want := "[step yield step yield step yield]"
	if got := fmt.Sprint(trace); got != want {
		t.Fatalf("spin() trace = %s, want %s", got, want)
	}
}

func TestStatusReportsPanelAndCounters(t *testing.T) {
	h := newTestHAL()
	a, _ := newTestApp(t, h)
	h.fb.failures = 1
	for i := 0; i < 2; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("Step() error = %v", err)
		}
	}

	got := a.Status()
	if !strings.HasPrefix(got, "bow steps=2 ") {
		t.Fatalf("Status() = %q, want bow panel after 2 steps", got)
	}
	s := a.Stats()
	want := fmt.Sprintf("bow steps=2 flushes=%d flusherr=%d skipped=%d dropped=%d switches=%d",
		s.Flushes, s.FlushErrors, s.SkippedFrames, s.DroppedCommands, s.Switches)
	if got != want {
		t.Fatalf("Status() = %q, want %q", got, want)
	}
	if s.FlushErrors != 1 {
		t.Fatalf("Stats().FlushErrors = %d, want 1", s.FlushErrors)
	}
}
