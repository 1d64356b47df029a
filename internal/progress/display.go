// Package progress renders transient progress indicators for slow
// operations (remote tag listings, changelog fetches, image pulls).
// Output degrades to plain text on non-TTY or ASCII-only terminals.
package progress

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Display drives a single spinner. Methods are no-ops on a nil
// receiver so callers can skip nil checks when progress is disabled.
type Display struct {
	spin    *spinner.Spinner
	symbols ProgressSymbols
	out     io.Writer
}

// NewDisplay returns a Display when the terminal supports one, or nil
// when output is not a TTY (plain messages are printed instead by the
// caller).
func NewDisplay() *Display {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return nil
	}

	symbols := SelectSymbols(caps)
	spin := spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond,
		spinner.WithWriter(os.Stderr))

	return &Display{spin: spin, symbols: symbols, out: os.Stderr}
}

// Start begins spinning with the given message.
func (d *Display) Start(message string) {
	if d == nil {
		return
	}
	d.spin.Suffix = " " + message
	d.spin.Start()
}

// Stop halts the spinner without printing a status line.
func (d *Display) Stop() {
	if d == nil {
		return
	}
	d.spin.Stop()
}

// Success stops the spinner and prints a checkmark line.
func (d *Display) Success(message string) {
	if d == nil {
		return
	}
	d.spin.Stop()
	fmt.Fprintf(d.out, "%s %s\n", d.symbols.Checkmark, message)
}

// Fail stops the spinner and prints a failure line.
func (d *Display) Fail(message string) {
	if d == nil {
		return
	}
	d.spin.Stop()
	fmt.Fprintf(d.out, "%s %s\n", d.symbols.Failure, message)
}
