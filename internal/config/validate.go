package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	FilePath string
	Field    string
	Message  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateYAMLSyntax checks that the file at path is well-formed YAML
// before koanf merges it. A missing file is not an error; defaults
// apply.
func ValidateYAMLSyntax(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return &ValidationError{FilePath: path, Message: fmt.Sprintf("invalid YAML: %v", err)}
	}
	return nil
}

// ValidateSettings checks constraints on the merged configuration.
func ValidateSettings(s *Settings) error {
	if s.Timeout < 0 {
		return &ValidationError{Field: "timeout", Message: "must be zero or positive"}
	}
	if s.ComposeFile == "" {
		return &ValidationError{Field: "compose_file", Message: "required value is empty"}
	}
	if s.EnvFile == "" {
		return &ValidationError{Field: "env_file", Message: "required value is empty"}
	}
	if s.ProjectName == "" {
		return &ValidationError{Field: "project_name", Message: "required value is empty"}
	}
	if s.ReleaseRepo == "" {
		return &ValidationError{Field: "release_repo", Message: "required value is empty"}
	}
	return nil
}
