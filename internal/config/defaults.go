package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps operators understand all available options.
func GetDefaultConfigTemplate() string {
	return `# deployctl configuration
# Values here are overridden by the deployment env file (.env) and
# PLACEOS_* environment variables.

# Release settings
branch: master                        # Platform branch used in the changelog URL
release_repo: https://github.com/PlaceOS/PlaceOS
changelog_url: https://raw.githubusercontent.com/PlaceOS/PlaceOS/%s/CHANGELOG.md
changelog_page: https://github.com/PlaceOS/PlaceOS/blob/master/CHANGELOG.md

# Stack settings
compose_file: docker-compose.yml      # Compose file describing the stack
project_name: placeos                 # Compose project name
env_file: .env                        # Deployment env file
timeout: 900                          # Per-invocation timeout in seconds (0 = no timeout)
skip_confirmations: false             # Skip confirmation prompts (also PLACEOS_YES=1)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		// tag: empty means "resolve the newest stable release on demand".
		"tag":            "",
		"branch":         "master",
		"release_repo":   "https://github.com/PlaceOS/PlaceOS",
		"changelog_url":  "https://raw.githubusercontent.com/PlaceOS/PlaceOS/%s/CHANGELOG.md",
		"changelog_page": "https://github.com/PlaceOS/PlaceOS/blob/master/CHANGELOG.md",
		"compose_file":   "docker-compose.yml",
		"project_name":   "placeos",
		"env_file":       ".env",
		// timeout: image pulls on slow links take a while; 15 minutes.
		"timeout":            900,
		"skip_confirmations": false,
	}
}
