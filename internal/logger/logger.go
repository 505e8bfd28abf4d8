package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Printer bundles the colorized printing functions used by the launcher.
// Every function behaves like fmt.Printf but writes to the Printer's own writer,
// so callers pass a Printer around instead of relying on package-level state.
type Printer struct {
	out io.Writer

	// Info prints informational messages in green.
	Info func(format string, a ...any)
	// Warn prints warnings in bright magenta.
	Warn func(format string, a ...any)
	// Error prints diagnostics in red.
	Error func(format string, a ...any)
	// Step prints progress lines in cyan.
	Step func(format string, a ...any)
	// Hint prints commands the user is expected to type, in yellow.
	Hint func(format string, a ...any)
	// Debug prints cyan debug lines when enabled, otherwise it is a no-op.
	Debug func(format string, a ...any)
}

// New builds a Printer writing to out. A nil writer means os.Stdout.
// When enableDebug is false, Debug silently drops its arguments.
func New(out io.Writer, enableDebug bool) *Printer {
	if out == nil {
		out = os.Stdout
	}
	p := &Printer{out: out}

	p.Info = bind(out, color.New(color.FgGreen))
	p.Warn = bind(out, color.New(color.FgHiMagenta))
	p.Error = bind(out, color.New(color.FgRed))
	p.Step = bind(out, color.New(color.FgCyan))
	p.Hint = bind(out, color.New(color.FgYellow))

	if enableDebug {
		p.Debug = bind(out, color.New(color.FgCyan, color.Faint))
	} else {
		p.Debug = func(format string, a ...any) {}
	}
	return p
}

// Plain prints uncolored text.
func (p *Printer) Plain(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	_, _ = fmt.Fprintln(p.out)
}

// DisableColor turns off ANSI escape codes for every Printer in the process.
func DisableColor() {
	color.NoColor = true
}

func bind(out io.Writer, c *color.Color) func(format string, a ...any) {
	f := c.FprintfFunc()
	return func(format string, a ...any) {
		f(out, format, a...)
	}
}
