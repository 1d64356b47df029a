package health

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	present := filepath.Join(dir, "docker-compose.yml")
	require.NoError(t, os.WriteFile(present, []byte("services: {}\n"), 0o600))

	tests := map[string]struct {
		path       string
		wantPassed bool
	}{
		"present": {path: present, wantPassed: true},
		"missing": {path: filepath.Join(dir, "absent.yml"), wantPassed: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := CheckFile("Compose file", tt.path)
			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Equal(t, "Compose file", result.Name)
			assert.Contains(t, result.Message, tt.path)
		})
	}
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	report := &Report{
		Checks: []CheckResult{
			{Name: "Docker CLI", Passed: true, Message: "docker found"},
			{Name: "Env file", Passed: false, Message: ".env not found"},
		},
	}

	formatted := FormatReport(report)
	assert.Contains(t, formatted, "✓ Docker CLI: docker found")
	assert.Contains(t, formatted, "✗ Env file: .env not found")
}

func TestTrimOutput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2.24.5", trimOutput([]byte("2.24.5\n")))
	assert.Equal(t, "2.24.5", trimOutput([]byte("2.24.5\r\n")))
	assert.Equal(t, "", trimOutput(nil))
}
