package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectSymbols(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps          TerminalCapabilities
		wantCheckmark string
		wantSpinner   int
	}{
		"unicode terminal": {
			caps:          TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			wantCheckmark: "✓",
			wantSpinner:   14,
		},
		"ascii terminal": {
			caps:          TerminalCapabilities{IsTTY: true, SupportsUnicode: false},
			wantCheckmark: "[OK]",
			wantSpinner:   9,
		},
		"no terminal": {
			caps:          TerminalCapabilities{},
			wantCheckmark: "[OK]",
			wantSpinner:   9,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			symbols := SelectSymbols(tt.caps)
			assert.Equal(t, tt.wantCheckmark, symbols.Checkmark)
			assert.Equal(t, tt.wantSpinner, symbols.SpinnerSet)
		})
	}
}

func TestDetectTerminalCapabilities(t *testing.T) {
	// Test output is piped, so the detector must report a non-TTY and
	// never select the spinner path.
	caps := DetectTerminalCapabilities()
	assert.False(t, caps.IsTTY)
	assert.False(t, caps.SupportsColor)
}

func TestNilDisplayIsSafe(t *testing.T) {
	t.Parallel()

	var d *Display
	d.Start("working")
	d.Success("done")
	d.Fail("failed")
	d.Stop()
}

func TestNewDisplayWithoutTTY(t *testing.T) {
	assert.Nil(t, NewDisplay())
}
