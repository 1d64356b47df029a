// Package cli tests command registration and the flag surface of the
// deployctl command tree.
// Related: internal/cli/root.go
// Tags: cli, cobra, registration
package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCommand(use string) *cobra.Command {
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == use || strings.SplitN(cmd.Use, " ", 2)[0] == use {
			return cmd
		}
	}
	return nil
}

func TestCommandRegistration(t *testing.T) {
	tests := map[string]struct {
		use     string
		groupID string
	}{
		"start":     {use: "start", groupID: GroupLifecycle},
		"stop":      {use: "stop", groupID: GroupLifecycle},
		"restart":   {use: "restart", groupID: GroupLifecycle},
		"logs":      {use: "logs", groupID: GroupLifecycle},
		"migrate":   {use: "migrate", groupID: GroupLifecycle},
		"upgrade":   {use: "upgrade", groupID: GroupRelease},
		"changelog": {use: "changelog", groupID: GroupRelease},
		"versions":  {use: "versions", groupID: GroupRelease},
		"update":    {use: "update", groupID: GroupMaintenance},
		"uninstall": {use: "uninstall", groupID: GroupMaintenance},
		"doctor":    {use: "doctor", groupID: GroupMaintenance},
		"config":    {use: "config", groupID: GroupMaintenance},
		"version":   {use: "version", groupID: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := findCommand(tt.use)
			require.NotNil(t, cmd, "%s command should be registered", tt.use)
			assert.Equal(t, tt.groupID, cmd.GroupID)
		})
	}
}

func TestPersistentFlags(t *testing.T) {
	yes := rootCmd.PersistentFlags().Lookup("yes")
	require.NotNil(t, yes)
	assert.Equal(t, "false", yes.DefValue)
	assert.Equal(t, "y", yes.Shorthand)

	envFile := rootCmd.PersistentFlags().Lookup("env-file")
	require.NotNil(t, envFile)
	assert.Equal(t, "", envFile.DefValue)
}

func TestCommandFlags(t *testing.T) {
	tests := map[string]struct {
		use      string
		flagName string
		defValue string
		wantType string
	}{
		"start no-pull": {
			use:      "start",
			flagName: "no-pull",
			defValue: "false",
			wantType: "bool",
		},
		"logs follow": {
			use:      "logs",
			flagName: "follow",
			defValue: "false",
			wantType: "bool",
		},
		"upgrade all": {
			use:      "upgrade",
			flagName: "all",
			defValue: "false",
			wantType: "bool",
		},
		"changelog all": {
			use:      "changelog",
			flagName: "all",
			defValue: "false",
			wantType: "bool",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := findCommand(tt.use)
			require.NotNil(t, cmd, "%s command must exist", tt.use)

			f := cmd.Flags().Lookup(tt.flagName)
			require.NotNil(t, f, "flag %s should exist", tt.flagName)
			assert.Equal(t, tt.defValue, f.DefValue)
			assert.Equal(t, tt.wantType, f.Value.Type())
		})
	}
}

func TestRootGroups(t *testing.T) {
	var ids []string
	for _, group := range rootCmd.Groups() {
		ids = append(ids, group.ID)
	}
	assert.Equal(t, []string{GroupLifecycle, GroupRelease, GroupMaintenance}, ids)
}
