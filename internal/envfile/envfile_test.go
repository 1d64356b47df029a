package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestGet(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, `# Deployment settings
PLACEOS_TAG=placeos-1.2312.5
PLACEOS_DOMAIN="example.com"
EMPTY=
QUOTED='secret value'

# trailing comment
`)

	file, err := Load(path)
	require.NoError(t, err)

	tests := map[string]struct {
		key       string
		wantValue string
		wantOK    bool
	}{
		"plain value": {
			key:       "PLACEOS_TAG",
			wantValue: "placeos-1.2312.5",
			wantOK:    true,
		},
		"double quoted": {
			key:       "PLACEOS_DOMAIN",
			wantValue: "example.com",
			wantOK:    true,
		},
		"single quoted": {
			key:       "QUOTED",
			wantValue: "secret value",
			wantOK:    true,
		},
		"empty value": {
			key:       "EMPTY",
			wantValue: "",
			wantOK:    true,
		},
		"missing key": {
			key:    "NOPE",
			wantOK: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			value, ok := file.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestSetReplacesInPlace(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "# header\nPLACEOS_TAG=placeos-1.2311.0\nOTHER=x\n")

	file, err := Load(path)
	require.NoError(t, err)

	file.Set("PLACEOS_TAG", "placeos-1.2312.5")
	require.NoError(t, file.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# header\nPLACEOS_TAG=placeos-1.2312.5\nOTHER=x\n", string(data))
}

func TestSetAppendsMissingKey(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "OTHER=x\n")

	file, err := Load(path)
	require.NoError(t, err)

	file.Set("JWT_SECRET", "abc123")
	require.NoError(t, file.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "OTHER=x\nJWT_SECRET=abc123\n", string(data))
}

func TestWritePreservesFormatting(t *testing.T) {
	t.Parallel()

	content := `# Secrets are generated on first start

PLACE_SERVER_SECRET=

# Everything below is operator managed
PLACEOS_DOMAIN=example.com
`
	path := writeEnvFile(t, content)

	file, err := Load(path)
	require.NoError(t, err)
	file.Set("PLACE_SERVER_SECRET", "generated")
	require.NoError(t, file.Write())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `# Secrets are generated on first start

PLACE_SERVER_SECRET=generated

# Everything below is operator managed
PLACEOS_DOMAIN=example.com
`, string(data))
}

func TestKeys(t *testing.T) {
	t.Parallel()

	path := writeEnvFile(t, "# comment\nA=1\n\nB=2\nnot a line\nC=3\n")

	file, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, file.Keys())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
