// Package output writes human-readable status to the terminal: one status
// line per document on stdout, warnings and errors on stderr.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Faint(true)
)

// Document states reported by Status.
const (
	StateUpdated   = "updated"
	StateUnchanged = "unchanged"
	StateDryRun    = "dry-run"
	StateCommitted = "committed"
)

// Printer writes status lines and diagnostics.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Color   bool
	Verbose bool
}

// NewPrinter creates a printer on stdout/stderr with color auto-detection.
func NewPrinter(verbose bool) *Printer {
	return &Printer{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Color:   UseColor(),
		Verbose: verbose,
	}
}

// Status reports what happened to a document, e.g. "  readme README.md (updated)".
func (p *Printer) Status(path, state string) {
	s := "(" + state + ")"
	switch state {
	case StateUpdated, StateCommitted:
		s = p.style(styleOK, s)
	case StateUnchanged, StateDryRun:
		s = p.style(styleDim, s)
	}
	fmt.Fprintf(p.Out, "  readme %s %s\n", path, s)
}

// Warn writes a warning to stderr.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.Err, "  %s %s\n", p.style(styleWarn, "warning:"), fmt.Sprintf(format, args...))
}

// Error writes an error to stderr.
func (p *Printer) Error(err error) {
	fmt.Fprintf(p.Err, "%s %v\n", p.style(styleError, "error:"), err)
}

// Debugf writes to stderr only in verbose mode.
func (p *Printer) Debugf(format string, args ...any) {
	if !p.Verbose {
		return
	}
	fmt.Fprintf(p.Err, "  %s\n", p.style(styleDim, fmt.Sprintf(format, args...)))
}

func (p *Printer) style(s lipgloss.Style, text string) string {
	if !p.Color {
		return text
	}
	return s.Render(text)
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// IsCI reports whether we run inside a CI job.
func IsCI() bool {
	return os.Getenv("CI") == "true"
}

// UseColor returns true if colored output should be used.
// Respects NO_COLOR env, TERM=dumb, and terminal detection.
func UseColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal() || IsCI()
}
