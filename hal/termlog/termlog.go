// Package termlog adapts a small attached LCD into a hal.Logger, so the
// debug reporter can render on boards that carry a display instead of (or
// next to) a serial console.
package termlog

import (
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// Logger renders log lines through a scrolling VT100 terminal.
type Logger struct {
	term *tinyterm.Terminal
}

// New builds a terminal logger on top of a display driver.
func New(d tinyterm.Displayer) *Logger {
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	return &Logger{term: t}
}

func (l *Logger) WriteLineString(s string) {
	_, _ = l.term.Write([]byte(s))
	_ = l.term.WriteByte('\n')
	l.term.Display()
}

func (l *Logger) WriteLineBytes(b []byte) {
	_, _ = l.term.Write(b)
	_ = l.term.WriteByte('\n')
	l.term.Display()
}
