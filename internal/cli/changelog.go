package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/changelog"
	clierrors "github.com/placeos/deployctl/internal/errors"
	"github.com/placeos/deployctl/internal/output"
	"github.com/placeos/deployctl/internal/release"
)

var changelogAllFlag bool

var changelogCmd = &cobra.Command{
	Use:   "changelog [version]",
	Short: "Show release notes for a version",
	Long: `Show release notes from the published changelog.

Without an argument the newest documented version is shown. With a
version argument the matching changelog section is shown, truncated
before the next older release unless --all is given.

Examples:
  deployctl changelog                     # Newest documented version
  deployctl changelog placeos-1.2312.5   # One specific version
  deployctl changelog 1.2312.5           # Tag prefix optional
  deployctl changelog --all 1.2312.5     # That version and everything older`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelog(cmd, args)
	},
}

func init() {
	changelogCmd.GroupID = GroupRelease
	rootCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().BoolVar(&changelogAllFlag, "all", false, "Include notes for all older versions")
}

func runChangelog(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	version := ""
	if len(args) == 1 {
		version = args[0]
	}
	// Shape validation happens before any network traffic so a
	// malformed argument never triggers a fetch.
	if version != "" && !validChangelogVersion(version) {
		clierrors.PrintError(clierrors.InvalidVersion(version, nil))
		return NewExitError(ExitInvalidArguments)
	}

	doc, err := changelog.Fetch(ctx, changelogDocumentURL(settings))
	if err != nil {
		clierrors.PrintError(clierrors.FetchFailed(err))
		return NewExitError(ExitFailure)
	}
	if version == "" {
		version, err = changelog.LatestVersionHeader(doc)
		if err != nil {
			return fmt.Errorf("no versions documented in changelog")
		}
	}

	excerpt, err := changelog.ExtractSection(doc, version, changelogAllFlag)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if errors.As(err, &notFound) {
			clierrors.PrintError(clierrors.VersionNotInChangelog(notFound.Version, notFound.AvailableVersions))
			return NewExitError(ExitInvalidArguments)
		}
		return err
	}

	output.PrintHeading(out, fmt.Sprintf("Release notes for %s", excerpt.Version()))
	output.PrintLink(out, changelog.DeepLink(settings.ChangelogPage, excerpt.Header))
	fmt.Fprintln(out)
	fmt.Fprintln(out, excerpt.Body)
	return nil
}

// validChangelogVersion accepts the tag shapes with or without the
// placeos- prefix, since changelog headers carry bare versions.
func validChangelogVersion(version string) bool {
	if release.IsValid(version) {
		return true
	}
	return release.IsValid(release.TagPrefix + version)
}
