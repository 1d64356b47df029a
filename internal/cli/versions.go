package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	clierrors "github.com/placeos/deployctl/internal/errors"
	"github.com/placeos/deployctl/internal/progress"
	"github.com/placeos/deployctl/internal/release"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List available release versions",
	Long: `List release versions from the platform repository's tag listing,
newest first. Channel names (nightly, preview, latest) are listed after
the calendar versions.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersions(cmd)
	},
}

func init() {
	versionsCmd.GroupID = GroupRelease
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	disp := progress.NewDisplay()
	disp.Start("Fetching release versions")
	tags, err := release.ListRemoteTags(cmd.Context(), settings.ReleaseRepo)
	disp.Stop()
	if err != nil {
		clierrors.PrintError(clierrors.FetchFailed(err))
		return NewExitError(ExitFailure)
	}

	out := cmd.OutOrStdout()
	for _, tag := range tags {
		marker := "  "
		if settings.Tag != "" && tag == settings.Tag {
			marker = "* "
		}
		fmt.Fprintf(out, "%s%s\n", marker, tag)
	}
	return nil
}
