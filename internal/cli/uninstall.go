package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/placeos/deployctl/internal/errors"
	"github.com/placeos/deployctl/internal/output"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the stack and its data",
	Long: `Stop and remove the deployment's containers, networks and named
volumes. All deployment data is destroyed.

The compose project name must be typed verbatim to confirm, unless
confirmations are skipped with --yes or PLACEOS_YES.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUninstall(cmd)
	},
}

func init() {
	uninstallCmd.GroupID = GroupMaintenance
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !settings.SkipConfirmations {
		// One shared reader: the first prompt must not buffer away the
		// input meant for the second.
		in := bufio.NewReader(cmd.InOrStdin())
		if !Confirm(in, out, fmt.Sprintf("Remove all containers and data volumes for project %q?", settings.ProjectName)) {
			fmt.Fprintln(out, "Uninstall cancelled.")
			return nil
		}
		// Destroying data gets a second, typed confirmation.
		if !ConfirmExact(in, out, "This permanently deletes deployment data.", settings.ProjectName) {
			clierrors.PrintError(clierrors.UninstallAborted(settings.ProjectName))
			return NewExitError(ExitInvalidArguments)
		}
	}

	runner := newRunner(settings)
	output.PrintExecutingCommand(out, runner.FormatCommand("down", "--remove-orphans", "--volumes"))
	if err := runner.Down(cmd.Context(), true); err != nil {
		return composeError(err)
	}

	output.PrintSuccess(out, "Stack removed")
	return nil
}
