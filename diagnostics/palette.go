package diagnostics

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette maps a small fixed vocabulary of diagnostic roles to colors, the
// way the console formatter maps styled.Style values to colors.
type Palette struct {
	Internal *color.Color
	Leaf     *color.Color
	Phase    *color.Color
	Count    *color.Color
}

// DefaultPalette is used when DumpTree/PlanDump are called with a nil palette.
func DefaultPalette() *Palette {
	return &Palette{
		Internal: color.New(color.FgBlue),
		Leaf:     color.New(color.FgGreen),
		Phase:    color.New(color.FgYellow, color.Bold),
		Count:    color.New(color.FgCyan),
	}
}

// colorEnabled reports whether stdout is an interactive terminal; when it
// is not (piped output, CI logs), DumpTree/PlanDump fall back to plain text
// written with fmt, without using the palette.
func colorEnabled() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
