package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placeos/deployctl/internal/config"
)

func TestChangelogDocumentURL(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		url    string
		branch string
		want   string
	}{
		"branch placeholder": {
			url:    "https://raw.githubusercontent.com/PlaceOS/PlaceOS/%s/CHANGELOG.md",
			branch: "master",
			want:   "https://raw.githubusercontent.com/PlaceOS/PlaceOS/master/CHANGELOG.md",
		},
		"custom branch": {
			url:    "https://raw.githubusercontent.com/PlaceOS/PlaceOS/%s/CHANGELOG.md",
			branch: "develop",
			want:   "https://raw.githubusercontent.com/PlaceOS/PlaceOS/develop/CHANGELOG.md",
		},
		"no placeholder": {
			url:    "https://example.com/CHANGELOG.md",
			branch: "master",
			want:   "https://example.com/CHANGELOG.md",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			settings := &config.Settings{ChangelogURL: tt.url, Branch: tt.branch}
			assert.Equal(t, tt.want, changelogDocumentURL(settings))
		})
	}
}

func TestNewRunner(t *testing.T) {
	t.Parallel()

	settings := &config.Settings{
		ComposeFile: "docker-compose.yml",
		ProjectName: "placeos",
		EnvFile:     ".env",
		Timeout:     900,
	}

	runner := newRunner(settings)
	assert.Equal(t, "docker", runner.Bin)
	assert.Equal(t, "docker-compose.yml", runner.File)
	assert.Equal(t, "placeos", runner.ProjectName)
	assert.Equal(t, ".env", runner.EnvFile)
	assert.Equal(t, 900, runner.Timeout)
}
