package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal describes where command output goes.
type Terminal struct {
	Out   io.Writer
	Color bool // Emit ANSI colors
	Width int  // Columns, 0 when unknown
}

// DetectTerminal inspects f: colors are enabled only for a TTY and only
// when NO_COLOR is unset.
func DetectTerminal(f *os.File) Terminal {
	t := Terminal{Out: f}
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return t
	}
	_, noColor := os.LookupEnv("NO_COLOR")
	t.Color = !noColor
	if w, _, err := term.GetSize(fd); err == nil {
		t.Width = w
	}
	return t
}

// Fits reports whether a screen of width w can be printed without wrapping.
func (t Terminal) Fits(w int) bool {
	return t.Width == 0 || w <= t.Width
}
