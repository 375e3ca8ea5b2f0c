// Package cli provides the Cobra-based CLI commands for bookmarks-getter
// (list, html, version).
package cli

import (
	"fmt"
	"runtime"

	sCli "github.com/ondrovic/common/utils/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd is the main Cobra command for the bookmarks-getter CLI tool,
// providing a short description and setting up the command's usage for
// extracting, filtering, and sorting browser bookmarks as JSON.
var RootCmd = &cobra.Command{
	Use:   "bookmarks-getter",
	Short: "A CLI tool to extract, filter, and sort browser bookmarks and return them in JSON format",
}

// clearTerminalScreen clears the terminal before non-quiet runs; tests may override.
var clearTerminalScreen = func(goos string) error {
	return sCli.ClearTerminalScreen(goos)
}

func init() {
	RootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress spinner and status output (for piping to jq)")
	_ = viper.BindPFlags(RootCmd.PersistentFlags())
	// Read quiet through viper rather than the executed command's own flag
	// set, so subcommands see the inherited value.
	RootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		if viper.GetBool("quiet") {
			return nil
		}
		if err := clearTerminalScreen(runtime.GOOS); err != nil {
			return fmt.Errorf("error clearing terminal: %w", err)
		}
		return nil
	}
}

// Execute runs the RootCmd command, handling any errors that occur during its execution.
// Returns an error if the command fails to execute.
func Execute() error {

	if err := RootCmd.Execute(); err != nil {
		return err
	}

	return nil
}
