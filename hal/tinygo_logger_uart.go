//go:build tinygo && baremetal && !lcd

package hal

import "machine"

func newBoardLogger(uart *machine.UART) Logger {
	return &uartLogger{uart: uart}
}
