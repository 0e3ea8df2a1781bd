package app

import (
	"strings"
	"unicode/utf8"

	"surface/hal"
	"surface/ui"

	"tinygo.org/x/tinyfont"
)

// fatal logs err and paints it on the display as best it can.
func fatal(h hal.HAL, err error) {
	msg := err.Error()
	if l := h.Logger(); l != nil {
		l.WriteLineString("surface: fatal: " + msg)
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
	if w <= 0 || hgt <= 0 {
		return
	}
	blank(fb, int(w), int(hgt))

	_, cw := tinyfont.LineWidth(ui.Font, "0")
	lh := int16(ui.LineHeight())
	if cw == 0 || lh <= 0 {
		_ = fb.Display()
		return
	}
	cols := int16(int(w) / int(cw))
	if cols <= 0 {
		cols = 1
	}

	y := lh
	for _, line := range []string{"FATAL", msg} {
		for len(line) > 0 {
			if y > hgt {
				_ = fb.Display()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(fb, ui.Font, 0, y, chunk, ui.On)
			y += lh
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
