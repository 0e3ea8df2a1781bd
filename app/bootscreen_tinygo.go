//go:build tinygo && bootdebug

package app

import (
	"surface/hal"
	"surface/ui"

	"tinygo.org/x/tinyfont"
)

func bootScreen(h hal.HAL, msg string) {
	bootDiagSetStep(msg)
	if h == nil {
		return
	}
	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}

	w, hgt := fb.Size()
	blank(fb, int(w), int(hgt))
	lh := int16(ui.LineHeight())
	tinyfont.WriteLine(fb, ui.Font, 0, lh, "surface boot", ui.On)
	tinyfont.WriteLine(fb, ui.Font, 0, 2*lh, msg, ui.On)
	_ = fb.Display()
}
