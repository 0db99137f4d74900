package diags

import (
	"os"

	"golang.org/x/term"
)

const (
	reset = "\x1b[0m"
	bold  = "\x1b[1m"
	red   = "\x1b[31m"
	blue  = "\x1b[34m"
)

func (f Formatter) paint(style string, s string) string {
	if !f.Color {
		return s
	}
	return style + s + reset
}

// UseColor reports whether output to file should be colored: it must be a
// terminal and NO_COLOR must be unset.
func UseColor(file *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
