package cli

import (
	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/output"
)

var stopCmd = &cobra.Command{
	Use:   "stop [service...]",
	Short: "Stop the deployment stack",
	Long: `Stop running containers without removing them or their data.

With service arguments only the named services are stopped.

Examples:
  deployctl stop
  deployctl stop core triggers`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStop(cmd, args)
	},
}

func init() {
	stopCmd.GroupID = GroupLifecycle
	rootCmd.AddCommand(stopCmd)
}

func runStop(cmd *cobra.Command, services []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runner := newRunner(settings)
	out := cmd.OutOrStdout()
	output.PrintExecutingCommand(out, runner.FormatCommand(append([]string{"stop"}, services...)...))
	if err := runner.Stop(cmd.Context(), services...); err != nil {
		return composeError(err)
	}

	output.PrintSuccess(out, "Stack stopped")
	return nil
}
