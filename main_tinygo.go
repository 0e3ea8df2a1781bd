//go:build tinygo

package main

import (
	"surface/app"
	"surface/hal"
)

func main() {
	app.Run(hal.New())
}
