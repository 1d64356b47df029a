package cli

import (
	"github.com/spf13/cobra"
)

var logsFollowFlag bool

var logsCmd = &cobra.Command{
	Use:   "logs [service...]",
	Short: "Show service logs",
	Long: `Show logs from the deployment's services.

With --follow the logs are streamed until interrupted; the configured
command timeout does not apply in follow mode.

Examples:
  deployctl logs
  deployctl logs core
  deployctl logs -f core triggers`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLogs(cmd, args)
	},
}

func init() {
	logsCmd.GroupID = GroupLifecycle
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().BoolVarP(&logsFollowFlag, "follow", "f", false, "Follow log output")
}

func runLogs(cmd *cobra.Command, services []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	runner := newRunner(settings)
	if err := runner.Logs(cmd.Context(), logsFollowFlag, services...); err != nil {
		return composeError(err)
	}
	return nil
}
