package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/health"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the deployment environment",
	Long: `Check that everything deployctl needs is in place: the docker CLI,
a reachable daemon, the compose plugin and the deployment files.

Exits non-zero when any check fails.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd)
	},
}

func init() {
	doctorCmd.GroupID = GroupMaintenance
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	report := health.Run(cmd.Context(), settings)
	report.Add(health.CheckRemote(cmd.Context(), settings.ReleaseRepo))
	fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

	if !report.Passed {
		return NewExitError(ExitMissingDependencies)
	}
	return nil
}
