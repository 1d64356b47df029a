// Package compose wraps docker compose invocations for the deployment
// stack. Commands are dispatched sequentially through os/exec with
// output streamed to the configured writers; there is no state kept
// between invocations.
package compose

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Runner executes docker compose commands against one deployment.
// The zero value is not usable; construct with NewRunner.
type Runner struct {
	// Bin is the container CLI, normally "docker".
	Bin string
	// File is the compose file path passed via -f.
	File string
	// ProjectName is the compose project name passed via -p.
	ProjectName string
	// EnvFile is passed via --env-file so compose sees the same
	// environment the CLI reads and writes.
	EnvFile string
	// Timeout in seconds for a single invocation; 0 disables it.
	// Follow-mode logs are always run without a timeout.
	Timeout int

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
}

// NewRunner returns a Runner wired to the process standard streams.
func NewRunner(file, projectName, envFile string, timeoutSeconds int) *Runner {
	return &Runner{
		Bin:         "docker",
		File:        file,
		ProjectName: projectName,
		EnvFile:     envFile,
		Timeout:     timeoutSeconds,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Stdin:       os.Stdin,
	}
}

// Args builds the full argument list for a compose subcommand,
// including the -f/-p/--env-file plumbing. Exposed so command
// construction is testable without docker present.
func (r *Runner) Args(sub ...string) []string {
	args := []string{"compose"}
	if r.File != "" {
		args = append(args, "-f", r.File)
	}
	if r.ProjectName != "" {
		args = append(args, "-p", r.ProjectName)
	}
	if r.EnvFile != "" {
		args = append(args, "--env-file", r.EnvFile)
	}
	return append(args, sub...)
}

// FormatCommand returns a human-readable command string for display
// and error messages.
func (r *Runner) FormatCommand(sub ...string) string {
	return r.Bin + " " + strings.Join(r.Args(sub...), " ")
}

// Pull pulls images for the given services, or all services when none
// are named.
func (r *Runner) Pull(ctx context.Context, services ...string) error {
	return r.run(ctx, append([]string{"pull"}, services...)...)
}

// Up creates and starts the stack detached.
func (r *Runner) Up(ctx context.Context, services ...string) error {
	return r.run(ctx, append([]string{"up", "-d", "--remove-orphans"}, services...)...)
}

// Stop stops running containers without removing them.
func (r *Runner) Stop(ctx context.Context, services ...string) error {
	return r.run(ctx, append([]string{"stop"}, services...)...)
}

// Restart restarts services in place.
func (r *Runner) Restart(ctx context.Context, services ...string) error {
	return r.run(ctx, append([]string{"restart"}, services...)...)
}

// Down stops and removes containers and networks. With removeVolumes
// the named volumes holding deployment data are removed as well.
func (r *Runner) Down(ctx context.Context, removeVolumes bool) error {
	args := []string{"down", "--remove-orphans"}
	if removeVolumes {
		args = append(args, "--volumes")
	}
	return r.run(ctx, args...)
}

// Logs streams service logs. With follow the invocation runs without a
// timeout until the caller interrupts it.
func (r *Runner) Logs(ctx context.Context, follow bool, services ...string) error {
	args := []string{"logs"}
	if follow {
		args = append(args, "--follow")
	}
	args = append(args, services...)
	if follow {
		return r.runNoTimeout(ctx, args...)
	}
	return r.run(ctx, args...)
}

// RunTask runs a one-off container for the given service and command,
// removing the container afterwards. Used for the init container's
// migration task.
func (r *Runner) RunTask(ctx context.Context, service string, cmd ...string) error {
	args := append([]string{"run", "--rm", service}, cmd...)
	return r.run(ctx, args...)
}

func (r *Runner) run(ctx context.Context, sub ...string) error {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(r.Timeout)*time.Second)
		defer cancel()
	}
	return r.exec(ctx, sub...)
}

func (r *Runner) runNoTimeout(ctx context.Context, sub ...string) error {
	return r.exec(ctx, sub...)
}

func (r *Runner) exec(ctx context.Context, sub ...string) error {
	cmd := exec.CommandContext(ctx, r.Bin, r.Args(sub...)...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Stdin = r.Stdin
	cmd.Env = os.Environ()

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return NewTimeoutError(time.Duration(r.Timeout)*time.Second, r.FormatCommand(sub...))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", r.FormatCommand(sub...), err)
	}
	return nil
}
