// Package config provides hierarchical configuration management for
// deployctl using koanf. Configuration is loaded with priority:
// environment variables > deployment env file (.env) > user config
// (~/.config/deployctl/config.yml) > defaults. The result is an
// explicit Settings struct passed into each operation; no process-wide
// mutable state.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/dotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix namespaces both process environment variables and env file
// entries read as configuration, e.g. PLACEOS_TAG -> tag.
const EnvPrefix = "PLACEOS_"

// Settings is the deployctl configuration passed into each operation.
type Settings struct {
	// Tag is the currently deployed version tag (PLACEOS_TAG in the
	// env file). Updated by the upgrade command.
	Tag string `koanf:"tag"`

	// Branch of the platform repository used in the changelog URL.
	Branch string `koanf:"branch"`

	// ReleaseRepo is the repository whose tag listing is the source of
	// release versions.
	ReleaseRepo string `koanf:"release_repo"`

	// ChangelogURL is the raw changelog document location. %s is
	// substituted with Branch.
	ChangelogURL string `koanf:"changelog_url"`

	// ChangelogPage is the hosted changelog page deep links point at.
	ChangelogPage string `koanf:"changelog_page"`

	// ComposeFile is the compose file describing the stack.
	ComposeFile string `koanf:"compose_file"`

	// ProjectName is the compose project name.
	ProjectName string `koanf:"project_name"`

	// EnvFile is the deployment env file read by compose and updated
	// by upgrade and start.
	EnvFile string `koanf:"env_file"`

	// Timeout in seconds for a single compose invocation (0 = none).
	Timeout int `koanf:"timeout"`

	// SkipConfirmations suppresses interactive prompts. Can also be
	// set via PLACEOS_YES.
	SkipConfirmations bool `koanf:"skip_confirmations"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// UserConfigPath overrides the user config path (for testing).
	UserConfigPath string
	// EnvFilePath overrides the deployment env file path.
	EnvFilePath string
}

// Load loads configuration from defaults, the user config file, the
// deployment env file and the process environment, in ascending
// priority.
func Load() (*Settings, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k, opts.UserConfigPath); err != nil {
		return nil, err
	}

	// The env file path may itself come from the user config, so
	// resolve it before loading the env file layer.
	envFilePath := opts.EnvFilePath
	if envFilePath == "" {
		envFilePath = k.String("env_file")
	}
	if err := loadEnvFile(k, envFilePath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := ValidateSettings(&settings); err != nil {
		return nil, err
	}

	if os.Getenv("PLACEOS_YES") != "" {
		settings.SkipConfirmations = true
	}

	return &settings, nil
}

// loadUserConfig loads the optional user-level YAML config.
func loadUserConfig(k *koanf.Koanf, customPath string) error {
	path := customPath
	if path == "" {
		var err error
		path, err = UserConfigPath()
		if err != nil {
			return nil // No home directory; defaults still apply.
		}
	}

	if !fileExists(path) {
		return nil
	}

	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating user config: %w", err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadEnvFile loads PLACEOS_-prefixed entries from the deployment env
// file. A missing env file is fine: start generates one on demand.
func loadEnvFile(k *koanf.Koanf, path string) error {
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), dotenv.ParserEnv(EnvPrefix, ".", envTransform)); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// envTransform converts env var names to config keys.
// Example: PLACEOS_COMPOSE_FILE -> compose_file.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
