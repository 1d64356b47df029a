package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintHelpers(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		print func(*bytes.Buffer)
		want  string
	}{
		"heading": {
			print: func(b *bytes.Buffer) { PrintHeading(b, "Release notes") },
			want:  "Release notes",
		},
		"success": {
			print: func(b *bytes.Buffer) { PrintSuccess(b, "Stack is up") },
			want:  "Stack is up",
		},
		"warning": {
			print: func(b *bytes.Buffer) { PrintWarning(b, "No release notes found") },
			want:  "No release notes found",
		},
		"link": {
			print: func(b *bytes.Buffer) { PrintLink(b, "https://example.com#123125") },
			want:  "https://example.com#123125",
		},
		"executing command": {
			print: func(b *bytes.Buffer) { PrintExecutingCommand(b, "docker compose pull") },
			want:  "docker compose pull",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGetTerminalWidth(t *testing.T) {
	t.Parallel()

	// Test output is piped; the fallback width applies.
	assert.Equal(t, 80, GetTerminalWidth())
}
