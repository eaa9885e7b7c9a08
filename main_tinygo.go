//go:build tinygo

package main

import (
	"handctrl/app"
	"handctrl/hal"
)

func main() {
	app.RunForever(hal.New())
}
