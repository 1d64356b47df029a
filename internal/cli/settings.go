package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/compose"
	"github.com/placeos/deployctl/internal/config"
)

// loadSettings loads configuration and applies persistent flag
// overrides on top of it.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	envFile, _ := cmd.Flags().GetString("env-file")

	settings, err := config.LoadWithOptions(config.LoadOptions{EnvFilePath: envFile})
	if err != nil {
		return nil, err
	}

	if envFile != "" {
		settings.EnvFile = envFile
	}
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		settings.SkipConfirmations = true
	}
	return settings, nil
}

// newRunner builds a compose runner for the configured deployment.
func newRunner(settings *config.Settings) *compose.Runner {
	return compose.NewRunner(settings.ComposeFile, settings.ProjectName, settings.EnvFile, settings.Timeout)
}

// changelogDocumentURL resolves the raw changelog URL, substituting the
// configured branch when the URL carries a placeholder.
func changelogDocumentURL(settings *config.Settings) string {
	if strings.Contains(settings.ChangelogURL, "%s") {
		return strings.Replace(settings.ChangelogURL, "%s", settings.Branch, 1)
	}
	return settings.ChangelogURL
}
