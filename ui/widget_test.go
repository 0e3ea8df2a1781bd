package ui

import (
	"image/color"
	"testing"

	"surface/synth"
)

var (
	_ Widget = (*Button)(nil)
	_ Widget = (*Knob)(nil)
	_ Widget = (*Panel)(nil)
)

type testSurface struct {
	w, h   int
	px     []bool
	writes int
	// touched is the bounding box of every SetPixel call.
	touched Rect
}

func newTestSurface() *testSurface {
	return &testSurface{w: 128, h: 64, px: make([]bool, 128*64), touched: EmptyRect()}
}

func (s *testSurface) Size() (x, y int16) { return int16(s.w), int16(s.h) }
func (s *testSurface) Display() error     { return nil }

func (s *testSurface) SetPixel(x, y int16, c color.RGBA) {
	s.writes++
	s.touched = s.touched.Cover(Rect{X: int(x), Y: int(y), W: 1, H: 1})
	if int(x) < 0 || int(x) >= s.w || int(y) < 0 || int(y) >= s.h {
		return
	}
	s.px[int(y)*s.w+int(x)] = c.R|c.G|c.B != 0
}

func (s *testSurface) on(r Rect) int {
	n := 0
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if s.px[y*s.w+x] {
				n++
			}
		}
	}
	return n
}

func TestValueVariants(t *testing.T) {
	if _, ok := Bool(true).Int(); ok {
		t.Fatal("Bool(true).Int() ok = true, want false")
	}
	if _, ok := Int(3).Bool(); ok {
		t.Fatal("Int(3).Bool() ok = true, want false")
	}
	if v, ok := Int(-7).Int(); !ok || v != -7 {
		t.Fatalf("Int(-7).Int() = %d, %v", v, ok)
	}
	if got := Int(12).String(); got != "Int(12)" {
		t.Fatalf("String() = %q", got)
	}
}

func TestButtonRenderClearsDirty(t *testing.T) {
	s := newTestSurface()
	b := NewButton(Point{X: 10, Y: 2}, "Bow", 0, Momentary())
	if !b.IsDirty() {
		t.Fatal("new button not dirty")
	}

	r := b.Render(s)
	if b.IsDirty() {
		t.Fatal("IsDirty() = true after Render")
	}
	if r.Empty() || r.X != 10 || r.Y != 2 {
		t.Fatalf("Render() = %+v, want box at (10,2)", r)
	}
	if !r.Contains(s.touched) {
		t.Fatalf("painted %+v outside returned box %+v", s.touched, r)
	}

	// Idempotent on a clean button.
	if r2 := b.Render(s); r2 != r || b.IsDirty() {
		t.Fatalf("second Render() = %+v, dirty=%v", r2, b.IsDirty())
	}
}

func TestInputResetAlwaysDirty(t *testing.T) {
	s := newTestSurface()
	b := NewButton(Point{}, "P1", 0, Notify())
	k := NewKnob(Point{Y: 30}, "Lvl", 1, synth.ExcBowLevel, 0)

	for _, w := range []Widget{&b, &k} {
		w.InputReset()
		w.InputReset()
		if !w.IsDirty() {
			t.Fatal("IsDirty() = false after InputReset on dirty widget")
		}
		w.Render(s)
		w.InputReset()
		if !w.IsDirty() {
			t.Fatal("IsDirty() = false after InputReset on clean widget")
		}
	}
}

func TestButtonNotifyNeverRedraws(t *testing.T) {
	s := newTestSurface()
	var out Commands
	b := NewButton(Point{}, "Sys", 4, Notify())
	b.Render(s)

	for i := 0; i < 5; i++ {
		b.InputUpdate(4, Bool(true), &out)
		b.InputUpdate(4, Bool(false), &out)
		if b.IsDirty() {
			t.Fatalf("press %d marked notify button dirty", i)
		}
	}
	if out.Len() != 0 {
		t.Fatalf("notify button emitted %d commands", out.Len())
	}
}

func TestButtonIgnoresOtherInputsAndVariants(t *testing.T) {
	s := newTestSurface()
	var out Commands
	b := NewButton(Point{}, "P1", 2, Trigger())
	b.Render(s)

	b.InputUpdate(3, Bool(true), &out)
	b.InputUpdate(2, Int(99), &out)
	if b.IsDirty() || out.Len() != 0 {
		t.Fatalf("mismatched input changed button: dirty=%v cmds=%d", b.IsDirty(), out.Len())
	}

	b.InputUpdate(2, Bool(true), &out)
	if !b.IsDirty() || !b.Highlighted() {
		t.Fatal("trigger press did not highlight")
	}
	if out.Len() != 1 || out.At(0) != TriggerNote(true) {
		t.Fatalf("commands = %+v, want TriggerNote(true)", out.Slice())
	}

	// Same level again is not an edge.
	b.Render(s)
	b.InputUpdate(2, Bool(true), &out)
	if b.IsDirty() || out.Len() != 1 {
		t.Fatal("held level re-ran behavior")
	}
}

func TestButtonNavigate(t *testing.T) {
	var out Commands
	b := NewButton(Point{}, " Str", 2, NavigateAndPlay(7))

	b.InputUpdate(2, Bool(true), &out)
	b.InputUpdate(2, Bool(false), &out)

	want := []Command{SwitchTo(7), TriggerNote(true), TriggerNote(false)}
	got := out.Slice()
	if len(got) != len(want) {
		t.Fatalf("commands = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("command %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestButtonToggle(t *testing.T) {
	s := newTestSurface()
	var out Commands
	b := NewButton(Point{}, "Mono", 1, Toggle(synth.SysMono)).WithHighlight(true)
	b.Render(s)

	b.InputUpdate(1, Bool(true), &out)
	if b.Highlighted() || !b.IsDirty() {
		t.Fatal("toggle press did not flip highlight")
	}
	b.Render(s)
	b.InputUpdate(1, Bool(false), &out)
	if b.IsDirty() {
		t.Fatal("toggle release redrew")
	}
	if out.Len() != 1 || out.At(0) != ToggleParam(synth.SysMono) {
		t.Fatalf("commands = %+v", out.Slice())
	}
}

func TestHighlightInvertsPixels(t *testing.T) {
	plain := newTestSurface()
	lit := newTestSurface()

	a := NewButton(Point{}, "Res", 0, Momentary())
	b := NewButton(Point{}, "Res", 0, Momentary()).WithHighlight(true)
	r := a.Render(plain)
	b.Render(lit)

	area := r.W * r.H
	if plain.on(r)+lit.on(r) != area {
		t.Fatalf("highlight is not the inverse: %d + %d != %d", plain.on(r), lit.on(r), area)
	}
}

func TestCommandsCapacity(t *testing.T) {
	var c Commands
	for i := 0; i < MaxCommands; i++ {
		if !c.Push(TriggerNote(true)) {
			t.Fatalf("Push() = false at %d", i)
		}
	}
	if c.Push(TriggerNote(false)) {
		t.Fatal("Push() on full list = true")
	}
	if !c.Push(Command{}) {
		t.Fatal("Push(stay) = false")
	}
	if c.Len() != MaxCommands || c.Dropped() != 1 {
		t.Fatalf("Len()=%d Dropped()=%d", c.Len(), c.Dropped())
	}
	c.Reset()
	if c.Len() != 0 || c.Dropped() != 0 {
		t.Fatal("Reset() left state behind")
	}
}

func TestCommandsSliceKeepsOrder(t *testing.T) {
	var c Commands
	c.Push(SetParam(synth.ExcBowLevel, 0.5))
	c.Push(Command{})
	c.Push(ToggleParam(synth.SysMono))
	c.Push(SwitchTo(3))

	got := c.Slice()
	want := []Command{
		{Kind: CmdSetParam, Param: synth.ExcBowLevel, Value: 0.5},
		{Kind: CmdToggleParam, Param: synth.SysMono},
		{Kind: CmdSwitchTo, Panel: 3},
	}
	if len(got) != len(want) {
		t.Fatalf("Slice() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] || c.At(i) != want[i] {
			t.Fatalf("Slice()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
