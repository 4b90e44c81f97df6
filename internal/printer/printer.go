// Package printer renders nbpack's console output with lipgloss styles.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // cyan
)

// Diagnostics go to errOut; out carries command output only.
var (
	out     io.Writer // nil means os.Stdout at call time
	errOut  io.Writer // nil means os.Stderr at call time
	verbose bool
)

func writer() io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}

func errWriter() io.Writer {
	if errOut == nil {
		return os.Stderr
	}
	return errOut
}

// SetNoColor disables ANSI styling for every renderer when true.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// SetVerbose toggles Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// SetOutput redirects print functions; nil restores stdout.
func SetOutput(w io.Writer) {
	out = w
}

// SetErrorOutput redirects PrintError, PrintHint and Debug; nil restores stderr.
func SetErrorOutput(w io.Writer) {
	errOut = w
}

func Faint(text string) string   { return faintStyle.Render(text) }
func Bold(text string) string    { return boldStyle.Render(text) }
func Success(text string) string { return successStyle.Render(text) }
func Error(text string) string   { return errorStyle.Render(text) }
func Warning(text string) string { return warningStyle.Render(text) }
func Info(text string) string    { return infoStyle.Render(text) }

// Check returns a green tick or red cross.
func Check(ok bool) string {
	if ok {
		return Success("✓")
	}
	return Error("✗")
}

func PrintSuccess(text string) { fmt.Fprintln(writer(), Success(text)) }
func PrintError(text string)   { fmt.Fprintln(errWriter(), Error(text)) }
func PrintWarning(text string) { fmt.Fprintln(writer(), Warning(text)) }
func PrintInfo(text string)    { fmt.Fprintln(writer(), Info(text)) }
func PrintFaint(text string)   { fmt.Fprintln(writer(), Faint(text)) }

// PrintHint writes a faint follow-up line next to an error.
func PrintHint(text string) { fmt.Fprintln(errWriter(), Faint(text)) }

// Print writes text without styling or a trailing newline.
func Print(text string) {
	fmt.Fprint(writer(), text)
}

// Println writes plain text.
func Println(a ...any) {
	fmt.Fprintln(writer(), a...)
}

// Debug prints a faint line when verbose output is on.
func Debug(format string, args ...any) {
	if !verbose {
		return
	}
	fmt.Fprintln(errWriter(), Faint(fmt.Sprintf(format, args...)))
}
