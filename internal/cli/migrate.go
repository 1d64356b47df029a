package cli

import (
	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/output"
)

// initService is the short-lived compose service that runs database
// migrations and seeds the initial data set.
const initService = "init"

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the init container against the running stack.

The init container applies database migrations and seeds required
records. It exits when done; its container is removed afterwards.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd)
	},
}

func init() {
	migrateCmd.GroupID = GroupLifecycle
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if err := preflight(ctx, settings); err != nil {
		return err
	}

	runner := newRunner(settings)
	out := cmd.OutOrStdout()
	output.PrintExecutingCommand(out, runner.FormatCommand("run", "--rm", initService))
	if err := runner.RunTask(ctx, initService); err != nil {
		return composeError(err)
	}

	output.PrintSuccess(out, "Migrations complete")
	return nil
}
