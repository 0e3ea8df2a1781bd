package panels

import "surface/ui"

// Slot holds the active panel. It is empty until the first switch.
type Slot struct {
	id    ui.PanelID
	panel *ui.Panel
}

func (s *Slot) Panel() *ui.Panel { return s.panel }
func (s *Slot) ID() ui.PanelID   { return s.id }
func (s *Slot) Empty() bool      { return s.panel == nil }

func (s *Slot) set(id ui.PanelID, p *ui.Panel) {
	s.id = id
	s.panel = p
}

// Switcher replaces the panel in its slot on request.
type Switcher struct {
	reg  *Registry
	env  Env
	slot Slot
	n    int
}

// NewSwitcher returns a switcher with an empty slot.
func NewSwitcher(reg *Registry, env Env) *Switcher {
	return &Switcher{reg: reg, env: env}
}

// Slot returns the active panel slot.
func (s *Switcher) Slot() *Slot { return &s.slot }

// Active returns the active panel, or nil before the first switch.
func (s *Switcher) Active() *ui.Panel { return s.slot.panel }

// Switches returns how many times a panel was installed.
func (s *Switcher) Switches() int { return s.n }

// SwitchTo installs a freshly built panel for id and reports whether the slot
// changed. Switching to the active panel does nothing unless force is set.
// On error the slot keeps its current panel.
func (s *Switcher) SwitchTo(id ui.PanelID, force bool) (bool, error) {
	if !force && !s.slot.Empty() && s.slot.id == id {
		return false, nil
	}
	p, err := s.reg.Build(id, s.env)
	if err != nil {
		return false, err
	}
	s.slot.set(id, p)
	s.n++
	return true, nil
}
