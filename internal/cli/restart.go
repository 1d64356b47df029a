package cli

import (
	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/output"
)

var restartCmd = &cobra.Command{
	Use:   "restart [service...]",
	Short: "Restart services in place",
	Long: `Restart services without recreating their containers.

With no arguments the whole stack is restarted.

Examples:
  deployctl restart
  deployctl restart nginx`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRestart(cmd, args)
	},
}

func init() {
	restartCmd.GroupID = GroupLifecycle
	rootCmd.AddCommand(restartCmd)
}

func runRestart(cmd *cobra.Command, services []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runner := newRunner(settings)
	out := cmd.OutOrStdout()
	output.PrintExecutingCommand(out, runner.FormatCommand(append([]string{"restart"}, services...)...))
	if err := runner.Restart(cmd.Context(), services...); err != nil {
		return composeError(err)
	}

	output.PrintSuccess(out, "Stack restarted")
	return nil
}
