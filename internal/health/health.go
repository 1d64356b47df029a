// Package health provides environment health checks for deployctl. It
// validates that the docker CLI, the compose plugin and the deployment
// files are available, returning structured reports used by the
// 'deployctl doctor' command and by lifecycle preflight.
package health

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/placeos/deployctl/internal/config"
)

// checkTimeout bounds each individual subprocess probe.
const checkTimeout = 10 * time.Second

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// Add appends a result to the report and folds it into the overall
// pass state.
func (r *Report) Add(check CheckResult) {
	r.Checks = append(r.Checks, check)
	if !check.Passed {
		r.Passed = false
	}
}

// Run executes all health checks concurrently and returns a report
// with results in a stable order.
func Run(ctx context.Context, settings *config.Settings) *Report {
	checks := []func(context.Context) CheckResult{
		CheckDockerCLI,
		CheckDockerDaemon,
		CheckComposePlugin,
		func(context.Context) CheckResult { return CheckFile("Compose file", settings.ComposeFile) },
		func(context.Context) CheckResult { return CheckFile("Env file", settings.EnvFile) },
	}

	results := make([]CheckResult, len(checks))
	g, ctx := errgroup.WithContext(ctx)
	for i, check := range checks {
		g.Go(func() error {
			results[i] = check(ctx)
			return nil
		})
	}
	// Checks report failure through their result, never an error.
	_ = g.Wait()

	report := &Report{Checks: results, Passed: true}
	for _, check := range results {
		if !check.Passed {
			report.Passed = false
		}
	}
	return report
}

// CheckDockerCLI checks that the docker CLI is on PATH.
func CheckDockerCLI(_ context.Context) CheckResult {
	if _, err := exec.LookPath("docker"); err != nil {
		return CheckResult{
			Name:    "Docker CLI",
			Passed:  false,
			Message: "docker not found in PATH",
		}
	}
	return CheckResult{Name: "Docker CLI", Passed: true, Message: "docker found"}
}

// CheckDockerDaemon checks that the docker daemon answers.
func CheckDockerDaemon(ctx context.Context) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if err := exec.CommandContext(ctx, "docker", "info", "--format", "{{.ServerVersion}}").Run(); err != nil {
		return CheckResult{
			Name:    "Docker daemon",
			Passed:  false,
			Message: "docker daemon not reachable (is the docker service running?)",
		}
	}
	return CheckResult{Name: "Docker daemon", Passed: true, Message: "daemon reachable"}
}

// CheckComposePlugin checks that the compose plugin is installed.
func CheckComposePlugin(ctx context.Context) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "docker", "compose", "version", "--short").Output()
	if err != nil {
		return CheckResult{
			Name:    "Compose plugin",
			Passed:  false,
			Message: "docker compose plugin not available",
		}
	}
	return CheckResult{
		Name:    "Compose plugin",
		Passed:  true,
		Message: fmt.Sprintf("compose %s", trimOutput(out)),
	}
}

// CheckRemote checks that the release host answers. Only doctor runs
// this one: lifecycle preflight must work offline.
func CheckRemote(ctx context.Context, url string) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return CheckResult{Name: "Release host", Passed: false, Message: fmt.Sprintf("invalid URL %s", url)}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return CheckResult{Name: "Release host", Passed: false, Message: fmt.Sprintf("%s unreachable", url)}
	}
	resp.Body.Close()
	return CheckResult{Name: "Release host", Passed: true, Message: url}
}

// CheckFile checks that a deployment file exists.
func CheckFile(name, path string) CheckResult {
	if _, err := os.Stat(path); err != nil {
		return CheckResult{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("%s not found", path),
		}
	}
	return CheckResult{Name: name, Passed: true, Message: path}
}

// FormatReport formats the health report for console output.
func FormatReport(report *Report) string {
	var output string
	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else {
			output += fmt.Sprintf("✗ %s: %s\n", check.Name, check.Message)
		}
	}
	return output
}

func trimOutput(out []byte) string {
	s := string(out)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
