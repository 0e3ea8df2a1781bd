//go:build tinygo && bootdebug

package app

import (
	"machine"
	"sync"
	"time"

	"surface/hal"
)

const bootDiagEnabled = true

// diag holds the latest boot phase or, once the loop runs, its status line.
var diag struct {
	mu   sync.Mutex
	line string
}

func bootDiagSetStep(line string) {
	diag.mu.Lock()
	diag.line = line
	diag.mu.Unlock()
}

// bootDiagStart echoes each new diagnostic line to the logger and USB CDC.
// A line that has not changed is not repeated.
func bootDiagStart(h hal.HAL) {
	if h == nil {
		return
	}
	l := h.Logger()
	go func() {
		var last string
		for {
			diag.mu.Lock()
			line := diag.line
			diag.mu.Unlock()

			if line != "" && line != last {
				last = line
				out := "bootdiag: " + line
				if l != nil {
					l.WriteLineString(out)
				}
				if usb := machine.USBCDC; usb != nil {
					_, _ = usb.Write([]byte(out + "\r\n"))
				}
			}
			time.Sleep(250 * time.Millisecond)
		}
	}()
}
