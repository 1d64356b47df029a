// Package cli implements the deployctl command tree. Each command
// lives in its own file and registers itself with the root command in
// an init function.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clierrors "github.com/placeos/deployctl/internal/errors"
)

// Command groups shown in help output.
const (
	GroupLifecycle   = "lifecycle"
	GroupRelease     = "release"
	GroupMaintenance = "maintenance"
)

var rootCmd = &cobra.Command{
	Use:   "deployctl",
	Short: "Manage a PlaceOS deployment",
	Long: `deployctl manages a docker compose deployment of PlaceOS: starting
and stopping the stack, upgrading it to published release versions and
inspecting the changelog for those versions.

Run it from the root of a cloned deployment repository, or point it at
the deployment files with --env-file and the compose_file setting.

Examples:
  deployctl start                  # Bring the stack up
  deployctl upgrade                # Upgrade to the newest stable release
  deployctl upgrade placeos-1.2312.5
  deployctl changelog 1.2312.5
  deployctl logs -f core`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupLifecycle, Title: "Lifecycle Commands:"},
		&cobra.Group{ID: GroupRelease, Title: "Release Commands:"},
		&cobra.Group{ID: GroupMaintenance, Title: "Maintenance Commands:"},
	)

	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().String("env-file", "", "Path to the deployment env file")
}

// Execute runs the root command and prints any resulting error. The
// returned error is passed to ExitCode by main to pick the process
// exit status.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
		return err
	}
	// Exit errors carry a code for main but have already been reported
	// by the command that raised them.
	if _, ok := err.(*exitError); !ok {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
