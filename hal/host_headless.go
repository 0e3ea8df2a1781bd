//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled    bool
	Hz         int
	Ticks      uint64
	StepBudget int
	Host       HostConfig
}

// RunHeadless runs the surface without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.StepBudget <= 0 {
		cfg.StepBudget = 1
	}

	h := newHost(cfg.Host)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()
	defer h.report()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if cfg.Host.Demo {
				h.demoTurn(tick)
			}
			for i := 0; i < cfg.StepBudget && step != nil; i++ {
				if err := step(); err != nil {
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// demoTurn sweeps the encoders one after another, one detent every few ticks.
func (h *hostHAL) demoTurn(tick uint64) {
	n := h.enc.Count()
	if n == 0 || tick%4 != 0 {
		return
	}
	i := int(tick/200) % n
	d := int32(1)
	if (tick/100)%2 == 1 {
		d = -1
	}
	h.enc.turn(i, d)
}

func (h *hostHAL) report() {
	s := h.fb.stats()
	h.logger.WriteLineString(fmt.Sprintf("display: %d flushes, %d bytes", s.Flushes, s.Bytes))
}
