package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/changelog"
	"github.com/placeos/deployctl/internal/config"
	clierrors "github.com/placeos/deployctl/internal/errors"
	"github.com/placeos/deployctl/internal/envfile"
	"github.com/placeos/deployctl/internal/output"
	"github.com/placeos/deployctl/internal/progress"
	"github.com/placeos/deployctl/internal/release"
)

// tagKey is the env file entry that pins the deployed version. Compose
// interpolates it into every image reference.
const tagKey = "PLACEOS_TAG"

var upgradeAllFlag bool

var upgradeCmd = &cobra.Command{
	Use:   "upgrade [version]",
	Short: "Upgrade the stack to a release version",
	Long: `Upgrade the deployment to a published release version.

Without an argument the newest stable release from the platform
repository's tag listing is selected. With an argument the version must
be a calendar version (placeos-1.2312.5), a month version
(placeos-1.2312) or a channel (nightly, preview, latest).

The release notes for the target version are shown before the env file
is updated and the stack is pulled and restarted.

Examples:
  deployctl upgrade                      # Newest stable release
  deployctl upgrade placeos-1.2312.5    # Exact version
  deployctl upgrade nightly              # Floating channel
  deployctl upgrade --all placeos-1.2312.5  # Notes for all older versions too`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpgrade(cmd, args)
	},
}

func init() {
	upgradeCmd.GroupID = GroupRelease
	rootCmd.AddCommand(upgradeCmd)

	upgradeCmd.Flags().BoolVar(&upgradeAllFlag, "all", false, "Show release notes for all versions up to the target")
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	requested := ""
	if len(args) == 1 {
		requested = args[0]
	}

	disp := progress.NewDisplay()
	disp.Start("Fetching release versions")
	tags, err := release.ListRemoteTags(ctx, settings.ReleaseRepo)
	disp.Stop()
	if err != nil {
		clierrors.PrintError(clierrors.FetchFailed(err))
		return NewExitError(ExitFailure)
	}

	version, err := release.Resolve(requested, tags)
	if err != nil {
		var invalid *release.InvalidFormatError
		if errors.As(err, &invalid) {
			clierrors.PrintError(clierrors.InvalidVersion(requested, tags))
			return NewExitError(ExitInvalidArguments)
		}
		return err
	}

	if err := showReleaseNotes(cmd, settings, version); err != nil {
		return err
	}

	if !settings.SkipConfirmations {
		if !Confirm(cmd.InOrStdin(), out, fmt.Sprintf("Upgrade to %s?", version)) {
			fmt.Fprintln(out, "Upgrade cancelled.")
			return nil
		}
	}

	env, err := envfile.Load(settings.EnvFile)
	if err != nil {
		clierrors.PrintError(clierrors.EnvFileNotFound(settings.EnvFile))
		return NewExitError(ExitMissingDependencies)
	}
	env.Set(tagKey, version)
	if err := env.Write(); err != nil {
		return err
	}

	runner := newRunner(settings)
	output.PrintExecutingCommand(out, runner.FormatCommand("pull"))
	if err := runner.Pull(ctx); err != nil {
		return composeError(err)
	}
	output.PrintExecutingCommand(out, runner.FormatCommand("up", "-d", "--remove-orphans"))
	if err := runner.Up(ctx); err != nil {
		return composeError(err)
	}

	output.PrintSuccess(out, fmt.Sprintf("Upgraded to %s", version))
	return nil
}

// showReleaseNotes prints the changelog excerpt for the target version.
// Channels and month versions have no exact changelog header, and a
// missing section is never a reason to block an upgrade, so failures
// degrade to a warning with a link to the hosted changelog.
func showReleaseNotes(cmd *cobra.Command, settings *config.Settings, version string) error {
	out := cmd.OutOrStdout()

	doc, err := changelog.Fetch(cmd.Context(), changelogDocumentURL(settings))
	if err != nil {
		output.PrintWarning(out, fmt.Sprintf("Could not fetch release notes: %v", err))
		return nil
	}

	excerpt, err := changelog.ExtractSection(doc, version, upgradeAllFlag)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if errors.As(err, &notFound) {
			output.PrintWarning(out, fmt.Sprintf("No release notes found for %s", version))
			output.PrintLink(out, settings.ChangelogPage)
			return nil
		}
		return err
	}

	output.PrintHeading(out, fmt.Sprintf("Release notes for %s", excerpt.Version()))
	output.PrintLink(out, changelog.DeepLink(settings.ChangelogPage, excerpt.Header))
	fmt.Fprintln(out)
	fmt.Fprintln(out, excerpt.Body)
	return nil
}
