//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"surface/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WindowConfig controls the desktop window.
type WindowConfig struct {
	// Scale is the size of one display pixel on screen.
	Scale int
	// ShowFlush outlines the most recent flushed region.
	ShowFlush bool
	Host      HostConfig
}

var (
	pixelOn  = color.RGBA{R: 0x9c, G: 0xe8, B: 0xff, A: 0xff}
	pixelOff = color.RGBA{R: 0x05, G: 0x08, B: 0x10, A: 0xff}
	flushBox = color.RGBA{R: 0xff, G: 0x40, B: 0x40, A: 0xff}
)

// RunWindow starts a desktop window that shows the flushed display and maps
// keys onto the front-panel controls. It blocks until the window closes.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	h := newHost(cfg.Host)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, cfg: cfg, ctl: newHostControls()}
	ebiten.SetWindowTitle(buildinfo.Banner("Surface"))
	ebiten.SetWindowSize(h.fb.width*cfg.Scale, h.fb.height*cfg.Scale)
	ebiten.SetTPS(60)
	err = ebiten.RunGame(g)
	h.report()
	return err
}

type hostGame struct {
	h     *hostHAL
	cfg   WindowConfig
	ctl   *hostControls
	img   *image.RGBA
	fbImg *ebiten.Image
	px    []bool
	step  func() error
}

func (g *hostGame) Update() error {
	g.ctl.poll(g.h)
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.img == nil || g.img.Bounds().Dx() != fb.width || g.img.Bounds().Dy() != fb.height {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
		g.px = make([]bool, fb.width*fb.height)
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}

	fb.snapshot(g.px)
	dst := g.img.Pix
	for i, on := range g.px {
		c := pixelOff
		if on {
			c = pixelOn
		}
		j := i * 4
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = 0xFF
	}
	g.fbImg.WritePixels(g.img.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.cfg.Scale), float64(g.cfg.Scale))
	screen.DrawImage(g.fbImg, op)

	if g.cfg.ShowFlush {
		if s := fb.stats(); s.Flushes > 0 {
			k := float32(g.cfg.Scale)
			vector.StrokeRect(screen, float32(s.LastX)*k, float32(s.LastY)*k, float32(s.LastW)*k, float32(s.LastH)*k, 1, flushBox, false)
		}
	}
	if g.h.led.lit() {
		vector.DrawFilledCircle(screen, float32(fb.width*g.cfg.Scale-6), 6, 3, flushBox, true)
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width * g.cfg.Scale, g.h.fb.height * g.cfg.Scale
}
