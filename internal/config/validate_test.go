package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateYAMLSyntax(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content string
		wantErr bool
	}{
		"valid":         {content: "project_name: placeos\ntimeout: 900\n"},
		"empty":         {content: ""},
		"comments only": {content: "# nothing here\n"},
		"unclosed list": {content: "items: [a, b\n", wantErr: true},
		"bad indent":    {content: "a:\n  b: 1\n c: 2\n", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			err := ValidateYAMLSyntax(path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateYAMLSyntaxMissingFile(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateYAMLSyntax(filepath.Join(t.TempDir(), "absent.yml")))
}

func TestValidateSettings(t *testing.T) {
	t.Parallel()

	valid := func() *Settings {
		return &Settings{
			ReleaseRepo: "https://github.com/PlaceOS/PlaceOS",
			ComposeFile: "docker-compose.yml",
			ProjectName: "placeos",
			EnvFile:     ".env",
			Timeout:     900,
		}
	}

	tests := map[string]struct {
		mutate    func(*Settings)
		wantField string
	}{
		"valid": {
			mutate: func(*Settings) {},
		},
		"zero timeout allowed": {
			mutate: func(s *Settings) { s.Timeout = 0 },
		},
		"negative timeout": {
			mutate:    func(s *Settings) { s.Timeout = -1 },
			wantField: "timeout",
		},
		"empty compose file": {
			mutate:    func(s *Settings) { s.ComposeFile = "" },
			wantField: "compose_file",
		},
		"empty env file": {
			mutate:    func(s *Settings) { s.EnvFile = "" },
			wantField: "env_file",
		},
		"empty project name": {
			mutate:    func(s *Settings) { s.ProjectName = "" },
			wantField: "project_name",
		},
		"empty release repo": {
			mutate:    func(s *Settings) { s.ReleaseRepo = "" },
			wantField: "release_repo",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			settings := valid()
			tt.mutate(settings)

			err := ValidateSettings(settings)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}
