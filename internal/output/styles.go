package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds all lipgloss styles for text output
var Styles = struct {
	Header    lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	ErrorType lipgloss.Style
	Timestamp lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Danger    lipgloss.Style
}{
	Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Value:     lipgloss.NewStyle().Bold(true),
	ErrorType: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
}

// ShouldStyle reports whether styled output is appropriate for the writer:
// only when it is a real terminal.
func ShouldStyle(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// StatusText returns status text for the report header.
func StatusText(hasErrors bool, styled bool) string {
	if !styled {
		if hasErrors {
			return "ERRORS DETECTED"
		}
		return "OK"
	}
	if hasErrors {
		return Styles.Danger.Render("ERRORS DETECTED")
	}
	return Styles.Success.Render("OK")
}
