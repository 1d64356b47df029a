package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the deployctl CLI.
// These templates ensure consistent, actionable error messages.

// DockerNotFound creates an error when the docker CLI is not installed.
func DockerNotFound() *CLIError {
	return NewPrerequisiteError(
		"docker command not found",
		"Install Docker Engine: https://docs.docker.com/engine/install/",
		"Or check that docker is in your PATH",
		"Verify installation with: docker --version",
	)
}

// ComposeNotFound creates an error when the compose plugin is not available.
func ComposeNotFound() *CLIError {
	return NewPrerequisiteError(
		"docker compose plugin not found",
		"Install the Compose plugin: https://docs.docker.com/compose/install/",
		"Verify installation with: docker compose version",
	)
}

// InvalidVersion creates an error for a version string matching none of
// the accepted tag shapes. The full list of valid versions is printed
// as remediation.
func InvalidVersion(requested string, available []string) *CLIError {
	remediation := []string{
		"Use a calendar version (placeos-1.2312.5), month version (placeos-1.2312) or channel (nightly, preview, latest)",
	}
	if len(available) > 0 {
		remediation = append(remediation, "Valid versions:\n      "+strings.Join(available, "\n      "))
	}
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("invalid version: %s", requested),
		"deployctl upgrade [version]",
		remediation...,
	)
}

// VersionNotInChangelog creates an error when a validly shaped version
// has no matching changelog section header.
func VersionNotInChangelog(version string, available []string) *CLIError {
	remediation := []string{
		"Check the published changelog for the exact version header",
	}
	if len(available) > 0 {
		remediation = append(remediation, "Documented versions:\n      "+strings.Join(available, "\n      "))
	}
	return NewArgumentError(
		fmt.Sprintf("version %s not found in changelog", version),
		remediation...,
	)
}

// EnvFileNotFound creates an error for a missing deployment env file.
func EnvFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("env file not found: %s", path),
		"Run deployctl from the deployment checkout root",
		"Or point at the env file explicitly: deployctl --env-file <path> ...",
	)
}

// ComposeFileNotFound creates an error for a missing compose file.
func ComposeFileNotFound(path string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("compose file not found: %s", path),
		"Run deployctl from the deployment checkout root",
		"Or set compose_file in ~/.config/deployctl/config.yml",
	)
}

// ComposeTimeout creates an error when a compose invocation times out.
func ComposeTimeout(duration string, command string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("command timed out after %s: %s", duration, command),
		"Increase the timeout: PLACEOS_TIMEOUT=1200",
		"Set timeout to 0 to disable the timeout entirely",
	)
}

// NotDeploymentRepo creates an error when self-update runs outside a
// git checkout of the deployment repository.
func NotDeploymentRepo(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("no git repository found at %s", path),
		"deployctl update only works inside a cloned deployment repository",
		"Clone it with: git clone https://github.com/PlaceOS/deploy",
	)
}

// UninstallAborted creates an error for a failed uninstall confirmation.
func UninstallAborted(project string) *CLIError {
	return NewArgumentError(
		"uninstall aborted: confirmation did not match",
		fmt.Sprintf("Type the project name %q exactly to confirm removal", project),
	)
}

// FetchFailed wraps a network failure while fetching remote data.
func FetchFailed(err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		"remote fetch failed",
		"Check your network connection",
		"Retry in a few minutes if the remote host is rate limiting",
	)
}
