package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show deployctl version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if build.IsDevBuild() {
			fmt.Fprintf(out, "deployctl %s (development build)\n", build.Version)
		} else {
			fmt.Fprintf(out, "deployctl %s\n", build.Version)
		}
		fmt.Fprintf(out, "commit: %s\n", build.Commit)
		fmt.Fprintf(out, "built: %s\n", build.BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
