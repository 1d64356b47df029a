package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/placeos/deployctl/internal/config"
	"github.com/placeos/deployctl/internal/output"
)

var configInitForceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage deployctl configuration",
	Long: `Commands for the user-level configuration file at
~/.config/deployctl/config.yml.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the user config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.UserConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the merged configuration",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigShow(cmd)
	},
}

func init() {
	configCmd.GroupID = GroupMaintenance
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)

	configInitCmd.Flags().BoolVar(&configInitForceFlag, "force", false, "Overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command) error {
	path, err := config.UserConfigPath()
	if err != nil {
		return err
	}
	dir, err := config.UserConfigDir()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForceFlag {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Wrote %s", path))
	return nil
}

func runConfigShow(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tag: %s\n", settings.Tag)
	fmt.Fprintf(out, "branch: %s\n", settings.Branch)
	fmt.Fprintf(out, "release_repo: %s\n", settings.ReleaseRepo)
	fmt.Fprintf(out, "changelog_url: %s\n", settings.ChangelogURL)
	fmt.Fprintf(out, "changelog_page: %s\n", settings.ChangelogPage)
	fmt.Fprintf(out, "compose_file: %s\n", settings.ComposeFile)
	fmt.Fprintf(out, "project_name: %s\n", settings.ProjectName)
	fmt.Fprintf(out, "env_file: %s\n", settings.EnvFile)
	fmt.Fprintf(out, "timeout: %d\n", settings.Timeout)
	fmt.Fprintf(out, "skip_confirmations: %t\n", settings.SkipConfirmations)
	return nil
}
