//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"surface/app"
	"surface/hal"
	"surface/panels"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		host     = hal.DefaultHostConfig()
		cfg      = app.DefaultConfig()
		start    string
		channel  uint
		note     uint
		list     bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Poll rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.BoolVar(&host.Demo, "demo", false, "Press buttons and turn encoders automatically.")
	flag.StringVar(&host.MIDIPort, "midi-port", "", "Send MIDI to the first output port whose name contains this.")
	flag.BoolVar(&list, "midi-list", false, "List MIDI output ports and exit.")
	flag.UintVar(&channel, "midi-channel", 1, "MIDI channel (1-16).")
	flag.UintVar(&note, "midi-note", 60, "MIDI note sounded by the gate.")
	flag.IntVar(&window.Scale, "scale", 4, "Window pixels per display pixel.")
	flag.BoolVar(&window.ShowFlush, "show-flush", false, "Outline the last flushed region.")
	flag.StringVar(&start, "start", panels.Name(cfg.StartPanel), "Start panel (bow, blow, strike, res1, res2, sys).")
	flag.Parse()
	defer hal.CloseMIDI()

	if list {
		for _, name := range hal.MIDIPorts() {
			fmt.Println(name)
		}
		return
	}

	id, ok := panels.Lookup(start)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown panel %q\n", start)
		os.Exit(2)
	}
	if channel < 1 || channel > 16 || note > 127 {
		fmt.Fprintln(os.Stderr, "midi channel must be 1-16 and note 0-127")
		os.Exit(2)
	}
	cfg.StartPanel = id
	cfg.MIDIChannel = uint8(channel - 1)
	cfg.MIDINote = uint8(note)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(ctx, h, cfg)
	}

	var err error
	if headless.Enabled {
		headless.Host = host
		err = hal.RunHeadless(ctx, newApp, headless)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		window.Host = host
		err = hal.RunWindow(newApp, window)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		hal.CloseMIDI()
		os.Exit(1)
	}
}
