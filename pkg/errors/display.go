// Package errors provides error formatting and display functions.
// Renders PlotErrors with color coding for TTY output.
package errors

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // Error type/code
	colorYellow = "\033[33m" // Context information
	colorCyan   = "\033[36m" // Valid-name listings
	colorDim    = "\033[90m" // Secondary/cause info
)

// Formatter handles error display with optional color support.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	// When false, output is plain text suitable for logs.
	UseColor bool

	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer

	// Indent is the prefix for context and valid-name lines.
	Indent string
}

// DefaultFormatter returns a Formatter configured for standard error output.
// Color is enabled if stderr is a TTY.
func DefaultFormatter() *Formatter {
	return &Formatter{
		UseColor: IsTTY(os.Stderr),
		Writer:   os.Stderr,
		Indent:   "  ",
	}
}

// IsTTY returns true if the given file is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Format renders an error with the default formatter.
func Format(err error) string {
	return DefaultFormatter().Format(err)
}

// Format renders an error with color coding based on formatter settings.
// For PlotError, displays code, message, context, cause, and valid names.
// For standard errors, displays a simple error message.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	pe, ok := AsPlotError(err)
	if !ok {
		return f.colorize(colorRed, "error: ") + err.Error()
	}

	var sb strings.Builder
	sb.WriteString(f.colorize(colorRed, fmt.Sprintf("[%s] ", pe.Code)))
	sb.WriteString(pe.Message)

	if pe.HasContext() {
		sb.WriteString("\n")
		sb.WriteString(f.Indent)
		sb.WriteString(f.colorize(colorYellow, pe.ContextString()))
	}

	if pe.Cause != nil {
		sb.WriteString("\n")
		sb.WriteString(f.Indent)
		sb.WriteString(f.colorize(colorDim, "caused by: "+pe.Cause.Error()))
	}

	if len(pe.ValidNames) > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.Indent)
		sb.WriteString(f.colorize(colorCyan, "valid names:"))
		for _, name := range pe.ValidNames {
			sb.WriteString("\n")
			sb.WriteString(f.Indent)
			sb.WriteString(f.Indent)
			sb.WriteString(f.colorize(colorCyan, "- "+name))
		}
	}

	return sb.String()
}

// Print writes the formatted error to the formatter's writer.
func (f *Formatter) Print(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(f.writer(), f.Format(err))
}

func (f *Formatter) writer() io.Writer {
	if f.Writer == nil {
		return os.Stderr
	}
	return f.Writer
}

func (f *Formatter) colorize(color, s string) string {
	if !f.UseColor {
		return s
	}
	return color + s + colorReset
}
