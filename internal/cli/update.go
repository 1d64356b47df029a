package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/placeos/deployctl/internal/errors"
	"github.com/placeos/deployctl/internal/git"
	"github.com/placeos/deployctl/internal/output"
	"github.com/placeos/deployctl/internal/progress"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the deployment repository",
	Long: `Fast-forward the deployment repository checkout from its origin
remote. This updates compose files and deployctl configuration, not the
running stack; run 'deployctl upgrade' to change the deployed version.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpdate(cmd)
	},
}

func init() {
	updateCmd.GroupID = GroupMaintenance
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if !git.IsRepository(cwd) {
		clierrors.PrintError(clierrors.NotDeploymentRepo(cwd))
		return NewExitError(ExitMissingDependencies)
	}

	disp := progress.NewDisplay()
	disp.Start("Pulling from origin")
	result, err := git.Pull(cmd.Context(), cwd)
	disp.Stop()
	if err != nil {
		clierrors.PrintError(clierrors.FetchFailed(err))
		return NewExitError(ExitFailure)
	}

	if result.Updated {
		output.PrintSuccess(out, fmt.Sprintf("Updated to %s", result.Commit))
	} else {
		output.PrintSuccess(out, "Already up to date")
	}
	return nil
}
