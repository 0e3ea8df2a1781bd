package ui

import (
	"image/color"
	"strconv"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	// On and Off are the two monochrome levels.
	On  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Off = color.RGBA{A: 0xff}
)

// Font is the face used for captions and value labels.
var Font tinyfont.Fonter = &proggy.TinySZ8pt7b

// LineHeight returns the height of one text row in pixels.
func LineHeight() int {
	return int(Font.GetYAdvance())
}

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

// ascent is the distance from the top of a text row to its baseline.
func ascent() int16 {
	a := -int16(Font.GetGlyph('A').Info().YOffset)
	lh := int16(LineHeight())
	if a <= 0 || a > lh {
		a = lh - 2
	}
	return a
}

// drawText writes text with its row top at (x, y), dropping any glyph pixel
// that falls outside clip.
func drawText(s Surface, clip Rect, x, y int, text string, c color.RGBA) {
	tinyfont.WriteLine(clipped{s, clip}, Font, int16(x), int16(y)+ascent(), text, c)
}

type clipped struct {
	Surface
	r Rect
}

func (c clipped) SetPixel(x, y int16, col color.RGBA) {
	if int(x) < c.r.X || int(y) < c.r.Y || int(x) >= c.r.X+c.r.W || int(y) >= c.r.Y+c.r.H {
		return
	}
	c.Surface.SetPixel(x, y, col)
}

func fillRect(s Surface, r Rect, c color.RGBA) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetPixel(int16(x), int16(y), c)
		}
	}
}

func itoa(v int) string { return strconv.Itoa(v) }
