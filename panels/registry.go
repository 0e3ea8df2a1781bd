// Package panels holds the screen layouts of the control surface and the
// state machine that swaps the active one.
package panels

import (
	"errors"
	"fmt"

	"surface/synth"
	"surface/ui"
)

// ErrUnknownPanel is returned for an id with no registered layout.
var ErrUnknownPanel = errors.New("panels: unknown panel")

// Env is what a layout needs to build its widgets.
type Env struct {
	// Params seeds knob values so they survive a panel switch.
	// A nil store starts every knob at its parameter default.
	Params *synth.Params
	// Modulus is the encoder counter wrap; 0 keeps ui.DefaultModulus.
	Modulus int32
}

func (e Env) value(p synth.Param) float32 {
	if e.Params == nil {
		return p.Spec().Default
	}
	return e.Params.Get(p)
}

// Layout describes how to build one panel.
type Layout struct {
	// Active is the index of the tab marked in the navigation row.
	Active int
	Build  func(p *ui.Panel, active int, env Env) error
}

// Registry maps panel ids to layouts.
type Registry struct {
	layouts [Count]Layout
}

// NewRegistry returns a registry with every built-in layout.
func NewRegistry() *Registry {
	r := &Registry{}
	r.Register(Bow, Layout{Active: 0, Build: buildBow})
	r.Register(Blow, Layout{Active: 1, Build: buildBlow})
	r.Register(Strike, Layout{Active: 2, Build: buildStrike})
	r.Register(Res1, Layout{Active: 0, Build: buildRes1})
	r.Register(Res2, Layout{Active: 1, Build: buildRes2})
	r.Register(Sys, Layout{Build: buildSys})
	return r
}

// Register installs l for id, replacing any previous layout.
func (r *Registry) Register(id ui.PanelID, l Layout) error {
	if id >= Count {
		return fmt.Errorf("panels: register %d: %w", id, ErrUnknownPanel)
	}
	r.layouts[id] = l
	return nil
}

// Has reports whether id has a layout.
func (r *Registry) Has(id ui.PanelID) bool {
	return id < Count && r.layouts[id].Build != nil
}

// Build returns a freshly built panel. Every widget in it is dirty.
func (r *Registry) Build(id ui.PanelID, env Env) (*ui.Panel, error) {
	if !r.Has(id) {
		return nil, fmt.Errorf("panels: build %d: %w", id, ErrUnknownPanel)
	}
	l := r.layouts[id]
	p := ui.NewPanel()
	if err := l.Build(p, l.Active, env); err != nil {
		return nil, fmt.Errorf("panels: build %s: %w", Name(id), err)
	}
	return p, nil
}
