// Package output provides terminal output formatting utilities for the
// deployctl CLI. This package is designed to have minimal dependencies
// to avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintHeading prints a bold heading line.
func PrintHeading(out io.Writer, heading string) {
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n", white(heading))
}

// PrintSuccess prints a green checkmark message.
func PrintSuccess(out io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green("✓"), message)
}

// PrintWarning prints a yellow warning message.
func PrintWarning(out io.Writer, message string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", yellow("!"), message)
}

// PrintLink prints a labeled URL in cyan so deep links stand out from
// surrounding text.
func PrintLink(out io.Writer, url string) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintf(out, "%s\n", cyan(url))
}

// PrintExecutingCommand prints the command being executed with colored styling.
func PrintExecutingCommand(out io.Writer, command string) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "\n%s %s\n\n", magenta("→ Executing:"), dim(command))
}
