// Package cliutil provides output helpers for the circegen command.
package cliutil

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Styler colors CLI text. A disabled Styler returns text unchanged.
type Styler struct {
	errorColor   *color.Color
	successColor *color.Color
	insertColor  *color.Color
	deleteColor  *color.Color
	headerColor  *color.Color
}

// NewStyler returns a Styler that colors output only when w is a terminal
// and noColor is false.
func NewStyler(w io.Writer, noColor bool) *Styler {
	return newStyler(!noColor && IsTerminal(w))
}

func newStyler(enabled bool) *Styler {
	s := &Styler{
		errorColor:   color.New(color.FgRed, color.Bold),
		successColor: color.New(color.FgGreen),
		insertColor:  color.New(color.FgGreen),
		deleteColor:  color.New(color.FgRed),
		headerColor:  color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{s.errorColor, s.successColor, s.insertColor, s.deleteColor, s.headerColor} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Error styles an error label.
func (s *Styler) Error(text string) string { return s.errorColor.Sprint(text) }

// Success styles a success message.
func (s *Styler) Success(text string) string { return s.successColor.Sprint(text) }

// Insert styles an added diff line.
func (s *Styler) Insert(text string) string { return s.insertColor.Sprint(text) }

// Delete styles a removed diff line.
func (s *Styler) Delete(text string) string { return s.deleteColor.Sprint(text) }

// Header styles a diff header line.
func (s *Styler) Header(text string) string { return s.headerColor.Sprint(text) }
