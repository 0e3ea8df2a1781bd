package ui

import "surface/synth"

// PanelID names one panel layout.
type PanelID uint8

// CommandKind selects what a Command asks the loop to do.
type CommandKind uint8

const (
	CmdStay CommandKind = iota
	CmdSwitchTo
	CmdTriggerNote
	CmdSetParam
	CmdToggleParam
)

func (k CommandKind) String() string {
	switch k {
	case CmdStay:
		return "stay"
	case CmdSwitchTo:
		return "switch_to"
	case CmdTriggerNote:
		return "trigger_note"
	case CmdSetParam:
		return "set_param"
	case CmdToggleParam:
		return "toggle_param"
	default:
		return "unknown"
	}
}

// Command is a side effect requested by a widget and applied by the loop
// that owns the active panel.
type Command struct {
	Kind  CommandKind
	Panel PanelID
	Gate  bool
	Param synth.Param
	Value float32
}

// SwitchTo asks the loop to make panel id active.
func SwitchTo(id PanelID) Command { return Command{Kind: CmdSwitchTo, Panel: id} }

// TriggerNote opens (on) or closes the note gate.
func TriggerNote(on bool) Command { return Command{Kind: CmdTriggerNote, Gate: on} }

// SetParam sets p to the normalized value v.
func SetParam(p synth.Param, v float32) Command {
	return Command{Kind: CmdSetParam, Param: p, Value: v}
}

// ToggleParam flips p between its minimum and maximum.
func ToggleParam(p synth.Param) Command { return Command{Kind: CmdToggleParam, Param: p} }

// MaxCommands bounds the commands collected during one poll iteration.
const MaxCommands = 16

// Commands is a fixed-capacity command list reused across iterations.
type Commands struct {
	buf     [MaxCommands]Command
	n       int
	dropped int
}

// Push appends cmd. CmdStay is ignored and reported as accepted. It
// reports false if the list is full, in which case cmd counts as dropped.
func (c *Commands) Push(cmd Command) bool {
	if cmd.Kind == CmdStay {
		return true
	}
	if c.n >= len(c.buf) {
		c.dropped++
		return false
	}
	c.buf[c.n] = cmd
	c.n++
	return true
}

// Len reports how many commands were pushed.
func (c *Commands) Len() int { return c.n }

// At returns the i-th pushed command; i must be below Len.
func (c *Commands) At(i int) Command { return c.buf[i] }

// Dropped counts the pushes refused since the last Reset.
func (c *Commands) Dropped() int { return c.dropped }

// Slice returns the pushed commands in order. It aliases the list and is
// valid until the next Push or Reset.
func (c *Commands) Slice() []Command { return c.buf[:c.n] }

// Reset empties the list and clears the drop count.
func (c *Commands) Reset() { c.n, c.dropped = 0, 0 }
