package panels

import (
	"surface/synth"
	"surface/ui"
)

// Panel ids.
const (
	Bow ui.PanelID = iota
	Blow
	Strike
	Res1
	Res2
	Sys

	Count
)

var names = [Count]string{
	Bow:    "bow",
	Blow:   "blow",
	Strike: "strike",
	Res1:   "res1",
	Res2:   "res2",
	Sys:    "sys",
}

// Name returns the short name of id, or "unknown".
func Name(id ui.PanelID) string {
	if id >= Count {
		return "unknown"
	}
	return names[id]
}

// Lookup returns the id with the given short name.
func Lookup(name string) (ui.PanelID, bool) {
	for id, n := range names {
		if n == name {
			return ui.PanelID(id), true
		}
	}
	return 0, false
}

type knobDef struct {
	slot    int
	caption string
	param   synth.Param
}

type navDef struct {
	slot    int
	caption string
	b       ui.Behavior
}

// marked prefixes the caption of the active tab with '*' and the others
// with a space so the row does not shift when the tab changes.
func marked(caption string, active bool) string {
	if active {
		return "*" + caption
	}
	return " " + caption
}

func addKnobs(p *ui.Panel, env Env, defs []knobDef) error {
	for _, d := range defs {
		k := ui.NewKnob(ui.Point{X: knobX[d.slot], Y: knobY()}, d.caption, KnobInput(d.slot), d.param, env.value(d.param))
		if env.Modulus != 0 {
			k = k.WithModulus(env.Modulus)
		}
		if err := p.AddKnob(k); err != nil {
			return err
		}
	}
	return nil
}

func addButtons(p *ui.Panel, defs []navDef) error {
	for _, d := range defs {
		b := ui.NewButton(ui.Point{X: buttonX[d.slot], Y: buttonY}, d.caption, ButtonInput(d.slot), d.b)
		if err := p.AddButton(b); err != nil {
			return err
		}
	}
	return nil
}

// exciterButtons is the tab row shared by the bow, blow and strike panels.
// Holding an exciter tab also sounds the note.
func exciterButtons(active int) []navDef {
	return []navDef{
		{0, marked("Bow", active == 0), ui.NavigateAndPlay(Bow)},
		{1, marked("Blw", active == 1), ui.NavigateAndPlay(Blow)},
		{2, marked("Str", active == 2), ui.NavigateAndPlay(Strike)},
		{3, "Res", ui.Navigate(Res1)},
		{4, "Sys", ui.Navigate(Sys)},
	}
}

func resonatorButtons(active int) []navDef {
	return []navDef{
		{0, marked("Res1", active == 0), ui.Navigate(Res1)},
		{1, marked("Res2", active == 1), ui.Navigate(Res2)},
		{3, "Exc", ui.Navigate(Bow)},
		{4, "Sys", ui.Navigate(Sys)},
	}
}

func buildBow(p *ui.Panel, active int, env Env) error {
	if err := addButtons(p, exciterButtons(active)); err != nil {
		return err
	}
	return addKnobs(p, env, []knobDef{
		{0, "Lvl", synth.ExcBowLevel},
		{1, "Tmbr", synth.ExcBowTimbre},
		{2, "Cntr", synth.ExcEnvShape},
	})
}

func buildBlow(p *ui.Panel, active int, env Env) error {
	if err := addButtons(p, exciterButtons(active)); err != nil {
		return err
	}
	return addKnobs(p, env, []knobDef{
		{0, "Lvl", synth.ExcBlowLevel},
		{1, "Tmbr", synth.ExcBlowTimbre},
		{2, "Cntr", synth.ExcEnvShape},
		{3, "Flow", synth.ExcBlowMeta},
	})
}

func buildStrike(p *ui.Panel, active int, env Env) error {
	if err := addButtons(p, exciterButtons(active)); err != nil {
		return err
	}
	return addKnobs(p, env, []knobDef{
		{0, "Lvl", synth.ExcStrikeLevel},
		{1, "Tmbr", synth.ExcStrikeTimbre},
		{3, "Mllt", synth.ExcStrikeMeta},
	})
}

func buildRes1(p *ui.Panel, active int, env Env) error {
	if err := addButtons(p, resonatorButtons(active)); err != nil {
		return err
	}
	return addKnobs(p, env, []knobDef{
		{0, "Geo", synth.ResGeometry},
		{1, "Bri", synth.ResBrightness},
		{2, "Damp", synth.ResDamping},
		{3, "Pos", synth.ResPosition},
	})
}

func buildRes2(p *ui.Panel, active int, env Env) error {
	if err := addButtons(p, resonatorButtons(active)); err != nil {
		return err
	}
	return addKnobs(p, env, []knobDef{
		{0, "Mod", synth.ResModulation},
		{2, "Spc", synth.OutSpace},
		{3, "Out", synth.OutLevel},
	})
}

// buildSys is the system page: a mono switch, a test note and the output
// stage.
func buildSys(p *ui.Panel, _ int, env Env) error {
	mono := ui.NewButton(ui.Point{X: buttonX[0], Y: buttonY}, "Mono", Button1, ui.Toggle(synth.SysMono)).
		WithHighlight(env.Params != nil && env.Params.On(synth.SysMono))
	if err := p.AddButton(mono); err != nil {
		return err
	}
	if err := addButtons(p, []navDef{
		{1, "Note", ui.Trigger()},
		{3, "Exc", ui.Navigate(Bow)},
		{4, "Res", ui.Navigate(Res1)},
	}); err != nil {
		return err
	}
	return addKnobs(p, env, []knobDef{
		{0, "Out", synth.OutLevel},
		{1, "Spc", synth.OutSpace},
	})
}
