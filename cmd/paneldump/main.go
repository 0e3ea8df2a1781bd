// Command paneldump renders every panel layout to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"surface/panels"
	"surface/synth"
	"surface/ui"
)

func main() {
	var (
		outDir = flag.String("out", ".", "Output directory.")
		scale  = flag.Int("scale", 4, "Output pixels per display pixel.")
		only   = flag.String("panel", "", "Render only this panel (bow, blow, strike, res1, res2, sys).")
	)
	flag.Parse()

	if *scale < 1 {
		fatalf("scale must be >= 1")
	}
	ids := make([]ui.PanelID, 0, panels.Count)
	if *only != "" {
		id, ok := panels.Lookup(*only)
		if !ok {
			fatalf("unknown panel: %s", *only)
		}
		ids = append(ids, id)
	} else {
		for id := ui.PanelID(0); id < panels.Count; id++ {
			ids = append(ids, id)
		}
	}

	reg := panels.NewRegistry()
	env := panels.Env{Params: synth.NewParams()}
	for _, id := range ids {
		img, err := render(reg, id, env)
		if err != nil {
			fatalf("%v", err)
		}
		path := filepath.Join(*outDir, panels.Name(id)+".png")
		if err := writePNG(path, upscale(img, *scale)); err != nil {
			fatalf("write %s: %v", path, err)
		}
		fmt.Println(path)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// screen is a display-sized grayscale image that widgets paint into.
type screen struct {
	*image.Gray
}

func newScreen() screen {
	return screen{image.NewGray(image.Rect(0, 0, panels.Width, panels.Height))}
}

func (s screen) Size() (x, y int16) {
	b := s.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (s screen) SetPixel(x, y int16, c color.RGBA) {
	if c.R|c.G|c.B != 0 {
		s.SetGray(int(x), int(y), color.Gray{Y: 0xff})
	} else {
		s.SetGray(int(x), int(y), color.Gray{})
	}
}

func (s screen) Display() error { return nil }

func render(reg *panels.Registry, id ui.PanelID, env panels.Env) (*image.Gray, error) {
	p, err := reg.Build(id, env)
	if err != nil {
		return nil, err
	}
	s := newScreen()
	p.Render(s)
	return s.Gray, nil
}

func upscale(src *image.Gray, n int) *image.Gray {
	if n == 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*n, b.Dy()*n))
	for y := 0; y < dst.Bounds().Dy(); y++ {
		for x := 0; x < dst.Bounds().Dx(); x++ {
			dst.SetGray(x, y, src.GrayAt(b.Min.X+x/n, b.Min.Y+y/n))
		}
	}
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
