package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	clierrors "github.com/placeos/deployctl/internal/errors"
	"github.com/placeos/deployctl/internal/envfile"
	"github.com/placeos/deployctl/internal/output"
	"github.com/placeos/deployctl/internal/progress"
	"github.com/placeos/deployctl/internal/secrets"
)

// serviceWaitTimeout bounds the post-up wait for services to settle.
const serviceWaitTimeout = 90 * time.Second

var startNoPullFlag bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the deployment stack",
	Long: `Start the deployment stack.

Generates any missing secrets in the env file, pulls images for the
configured version and brings the stack up detached. Safe to run on an
already-running stack.

Examples:
  deployctl start
  deployctl start --no-pull   # Skip the image pull`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart(cmd)
	},
}

func init() {
	startCmd.GroupID = GroupLifecycle
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().BoolVar(&startNoPullFlag, "no-pull", false, "Start without pulling images first")
}

func runStart(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	// The env file must exist before the health checks and compose see
	// it. A fresh checkout ships without one.
	if _, err := os.Stat(settings.EnvFile); os.IsNotExist(err) {
		if err := os.WriteFile(settings.EnvFile, nil, 0o600); err != nil {
			return fmt.Errorf("creating env file %s: %w", settings.EnvFile, err)
		}
		output.PrintWarning(out, fmt.Sprintf("Created empty env file %s", settings.EnvFile))
	}

	if err := preflight(ctx, settings); err != nil {
		return err
	}

	env, err := envfile.Load(settings.EnvFile)
	if err != nil {
		clierrors.PrintError(clierrors.EnvFileNotFound(settings.EnvFile))
		return NewExitError(ExitMissingDependencies)
	}
	generated, err := secrets.Ensure(env, secrets.DefaultKeys)
	if err != nil {
		return err
	}
	if len(generated) > 0 {
		if err := env.Write(); err != nil {
			return err
		}
		output.PrintSuccess(out, fmt.Sprintf("Generated secrets: %s", strings.Join(generated, ", ")))
	}

	runner := newRunner(settings)
	if !startNoPullFlag {
		output.PrintExecutingCommand(out, runner.FormatCommand("pull"))
		if err := runner.Pull(ctx); err != nil {
			return composeError(err)
		}
	}

	output.PrintExecutingCommand(out, runner.FormatCommand("up", "-d", "--remove-orphans"))
	if err := runner.Up(ctx); err != nil {
		return composeError(err)
	}

	disp := progress.NewDisplay()
	disp.Start("Waiting for services")
	err = runner.WaitRunning(ctx, serviceWaitTimeout)
	disp.Stop()
	if err != nil {
		output.PrintWarning(out, fmt.Sprintf("Stack started but some services are not running yet: %v", err))
		output.PrintWarning(out, "Inspect them with: deployctl logs")
		return nil
	}

	output.PrintSuccess(out, "Stack is up")
	return nil
}
