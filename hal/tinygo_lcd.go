//go:build tinygo && baremetal && lcd

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/st7789"

	"handctrl/hal/termlog"
)

// newBoardLogger routes debug output to an ST7789 panel on SPI1 instead of
// the UART, for boards with the optional status display fitted.
//
// SPI1: SCK GP10, SDO GP11. Control: DC GP14, RST GP15, CS GP13, BL GP12.
func newBoardLogger(uart *machine.UART) Logger {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       machine.GP10,
		SDO:       machine.GP11,
		Frequency: 40_000_000,
	})

	display := st7789.New(machine.SPI1,
		machine.GP15, // reset
		machine.GP14, // dc
		machine.GP13, // cs
		machine.GP12, // backlight
	)
	display.Configure(st7789.Config{
		Width:    240,
		Height:   240,
		Rotation: drivers.Rotation0,
	})
	display.FillScreen(color.RGBA{A: 255})

	return termlog.New(&display)
}
