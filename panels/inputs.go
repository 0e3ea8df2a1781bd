package panels

import "surface/ui"

// Physical controls. The numbering is fixed for the life of a build.
const (
	Button1 ui.InputID = iota
	Button2
	Button3
	Button4
	Button5
	Knob1
	Knob2
	Knob3
	Knob4
)

// NumButtons and NumKnobs are the controls present on the front panel.
const (
	NumButtons = 5
	NumKnobs   = 4
)

// ButtonInput returns the id of the i-th button.
func ButtonInput(i int) ui.InputID { return Button1 + ui.InputID(i) }

// KnobInput returns the id of the i-th knob.
func KnobInput(i int) ui.InputID { return Knob1 + ui.InputID(i) }

// Screen positions of the button row and the knob row.
var (
	buttonX = [NumButtons]int{0, 26, 51, 77, 102}
	knobX   = [NumKnobs]int{0, 32, 64, 96}
)

// Display size the layouts are drawn for.
const (
	Width  = 128
	Height = 64
)

const buttonY = 0

// knobY puts the two-row knob strip on the bottom edge.
func knobY() int { return Height - 2*ui.LineHeight() }
