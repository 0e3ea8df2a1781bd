//go:build !(tinygo && bootdebug)

package app

import "surface/hal"

const bootDiagEnabled = false

func bootDiagStart(hal.HAL)      {}
func bootDiagSetStep(string)     {}
func bootScreen(hal.HAL, string) {}
