//go:build tinygo && baremetal

package hal

import (
	"fmt"
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ssd1306"
)

// SSD1306 addressing commands used by region flushes.
const (
	cmdColumnAddr = 0x21
	cmdPageAddr   = 0x22

	// i2cChunk bounds one data transfer on the bus.
	i2cChunk = 32
)

// ssd1306FB draws through the driver's buffer and flushes regions with a
// column/page window so only the touched bytes cross the bus.
type ssd1306FB struct {
	bus  *machine.I2C
	addr uint16
	w, h int

	setPixel func(x, y int16, c color.RGBA)
	display  func() error
	clear    func()
	buffer   func() []byte

	tx [i2cChunk + 1]byte
}

func newSSD1306(bus *machine.I2C, sda, scl machine.Pin) (*ssd1306FB, error) {
	if err := bus.Configure(machine.I2CConfig{
		Frequency: 400000,
		SDA:       sda,
		SCL:       scl,
	}); err != nil {
		return nil, fmt.Errorf("i2c: %w", err)
	}

	dev := ssd1306.NewI2C(bus)
	dev.Configure(ssd1306.Config{
		Width:    displayWidth,
		Height:   displayHeight,
		Address:  displayAddr,
		VccState: ssd1306.SWITCHCAPVCC,
	})

	return &ssd1306FB{
		bus:      bus,
		addr:     displayAddr,
		w:        displayWidth,
		h:        displayHeight,
		setPixel: dev.SetPixel,
		display:  dev.Display,
		clear:    func() { dev.ClearBuffer() },
		buffer:   dev.GetBuffer,
	}, nil
}

func (f *ssd1306FB) Size() (x, y int16) { return int16(f.w), int16(f.h) }

func (f *ssd1306FB) SetPixel(x, y int16, c color.RGBA) {
	f.setPixel(x, y, c)
}

func (f *ssd1306FB) Display() error {
	if err := f.display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

func (f *ssd1306FB) Clear() error {
	f.clear()
	return f.Display()
}

func (f *ssd1306FB) FlushRegion(x, y, w, h int) error {
	win, ok := regionWindow(x, y, w, h, f.w, f.h)
	if !ok {
		return nil
	}
	if err := f.command(cmdColumnAddr, byte(win.x0), byte(win.x1)); err != nil {
		return err
	}
	if err := f.command(cmdPageAddr, byte(win.p0), byte(win.p1)); err != nil {
		return err
	}

	buf := f.buffer()
	for p := win.p0; p <= win.p1; p++ {
		off := p * f.w
		if err := f.data(buf[off+win.x0 : off+win.x1+1]); err != nil {
			return err
		}
	}
	return nil
}

func (f *ssd1306FB) command(cmd ...byte) error {
	for _, c := range cmd {
		f.tx[0], f.tx[1] = 0x00, c
		if err := f.bus.Tx(f.addr, f.tx[:2], nil); err != nil {
			return fmt.Errorf("display: command %#x: %w", c, err)
		}
	}
	return nil
}

// data sends display RAM bytes in bus-sized chunks.
func (f *ssd1306FB) data(b []byte) error {
	for len(b) > 0 {
		n := copy(f.tx[1:], b)
		f.tx[0] = 0x40
		if err := f.bus.Tx(f.addr, f.tx[:n+1], nil); err != nil {
			return fmt.Errorf("display: data: %w", err)
		}
		b = b[n:]
	}
	return nil
}
