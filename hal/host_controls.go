//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keys 1-5 hold the buttons. Each encoder has an up/down key pair; holding
// one repeats after a short delay.
var (
	buttonKeys  = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}
	encoderKeys = [][2]ebiten.Key{
		{ebiten.KeyQ, ebiten.KeyA},
		{ebiten.KeyW, ebiten.KeyS},
		{ebiten.KeyE, ebiten.KeyD},
		{ebiten.KeyR, ebiten.KeyF},
	}
)

const (
	repeatDelay = 15
	repeatEvery = 3
)

type hostControls struct{}

func newHostControls() *hostControls { return &hostControls{} }

func (c *hostControls) poll(h *hostHAL) {
	for i, k := range buttonKeys {
		if inpututil.IsKeyJustPressed(k) {
			h.press(i, true)
		}
		if inpututil.IsKeyJustReleased(k) {
			h.press(i, false)
		}
	}

	// Shift turns ten detents at a time.
	step := int32(1)
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		step = 10
	}
	for i, pair := range encoderKeys {
		if repeating(pair[0]) {
			h.enc.turn(i, step)
		}
		if repeating(pair[1]) {
			h.enc.turn(i, -step)
		}
	}
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatEvery == 0
}
